package domain

// SeedPlan returns the built-in initial project plan used whenever no plan
// has been persisted yet. Each call returns a fresh copy so edits never leak
// into the seed.
func SeedPlan() ProjectPlan {
	return ProjectPlan{
		TotalProducts: 114053,
		AnalystTarget: 650,
		TotalAnalysts: 4,
		TotalDays:     60,
		StartDate:     "2025-09-01",
		EndDate:       "2025-10-31",
		Categories: []CategoryPlan{
			{Name: "MERCEARIA DOCE", Products: 16413, WorkHours: "56:48", Days: 6, StartDate: "2025-09-01", EndDate: "2025-09-09"},
			{Name: "MERCEARIA COMPLEMENTAR", Products: 9615, WorkHours: "33:16", Days: 4, StartDate: "2025-09-09", EndDate: "2025-09-15"},
			{Name: "MERCEARIA BÁSICA", Products: 8115, WorkHours: "28:05", Days: 3, StartDate: "2025-09-15", EndDate: "2025-09-18"},
			{Name: "MERCEARIA LÍQUIDA", Products: 8534, WorkHours: "29:32", Days: 3, StartDate: "2025-09-18", EndDate: "2025-09-23"},
			{Name: "MERCEARIA SALGADA", Products: 3432, WorkHours: "11:52", Days: 1, StartDate: "2025-09-23", EndDate: "2025-09-24"},
			{Name: "SAUDÁVEIS", Products: 993, WorkHours: "3:26", Days: 0, StartDate: "2025-09-24", EndDate: "2025-09-24"},
			{Name: "SAZONAIS", Products: 476, WorkHours: "1:38", Days: 0, StartDate: "2025-09-24", EndDate: "2025-09-24"},
			{Name: "LIMPEZA", Products: 6902, WorkHours: "23:53", Days: 3, StartDate: "2025-09-24", EndDate: "2025-09-29"},
			{Name: "HIGIENE E BELEZA", Products: 14917, WorkHours: "51:38", Days: 6, StartDate: "2025-09-29", EndDate: "2025-10-07"},
			{Name: "FARMÁCIA E PARAFARMACIA", Products: 6419, WorkHours: "22:13", Days: 2, StartDate: "2025-10-07", EndDate: "2025-10-09"},
			{Name: "PET SHOP", Products: 3060, WorkHours: "10:35", Days: 1, StartDate: "2025-10-09", EndDate: "2025-10-10"},
			{Name: "AUTOMOTIVOS", Products: 682, WorkHours: "2:21", Days: 0, StartDate: "2025-10-10", EndDate: "2025-10-10"},
			{Name: "FRIOS E LATÍCINIOS", Products: 4638, WorkHours: "16:03", Days: 2, StartDate: "2025-10-10", EndDate: "2025-10-14"},
			{Name: "HORTIFRUTI", Products: 972, WorkHours: "3:21", Days: 0, StartDate: "2025-10-14", EndDate: "2025-10-14"},
			{Name: "CONGELADOS", Products: 4736, WorkHours: "16:23", Days: 2, StartDate: "2025-10-14", EndDate: "2025-10-16"},
			{Name: "AÇOUGUE", Products: 263, WorkHours: "0:54", Days: 0, StartDate: "2025-10-16", EndDate: "2025-10-16"},
			{Name: "PADARIA", Products: 1058, WorkHours: "3:39", Days: 0, StartDate: "2025-10-16", EndDate: "2025-10-16"},
			{Name: "PEIXARIA", Products: 28, WorkHours: "0:05", Days: 0, StartDate: "2025-10-16", EndDate: "2025-10-16"},
			{Name: "ELETRÔNICOS E ELETRODOMÉSTICOS", Products: 980, WorkHours: "3:23", Days: 0, StartDate: "2025-10-16", EndDate: "2025-10-16"},
			{Name: "BAZAR", Products: 21436, WorkHours: "74:12", Days: 8, StartDate: "2025-10-16", EndDate: "2025-10-28"},
			{Name: "TABACO", Products: 384, WorkHours: "1:19", Days: 0, StartDate: "2025-10-28", EndDate: "2025-10-28"},
		},
		Adjustments: []Adjustment{
			{Name: "MERCEARIA", Value: 47578, Percentage: 41.72},
			{Name: "HIGIENE E LIMPEZA (PET SHOP)", Value: 31980, Percentage: 28.04},
			{Name: "PADARIA, AÇOUGUE, CONGELADOS, HORTI", Value: 11695, Percentage: 10.25},
			{Name: "BAZAR, TABACO", Value: 22800, Percentage: 19.99},
		},
	}
}
