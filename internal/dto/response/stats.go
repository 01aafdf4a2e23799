package response

import "listacrosseu/internal/data/repository"

type CountryStat struct {
	CountryCode string `json:"country_code"`
	Count       int64  `json:"count"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type CityStat struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code,omitempty"`
	Count       int64  `json:"count"`
}

type StatsResponse struct {
	TotalBusinesses int64          `json:"total_businesses"`
	ByCountry       []CountryStat  `json:"by_country"`
	TopCategories   []CategoryStat `json:"top_categories"`
	TopCities       []CityStat     `json:"top_cities"`
}

type CategoriesResponse struct {
	Categories []CategoryStat `json:"categories"`
}

// Helper converters
func CountryStats(counts []repository.CountryCount) []CountryStat {
	stats := make([]CountryStat, len(counts))
	for i, c := range counts {
		stats[i] = CountryStat{CountryCode: c.CountryCode, Count: c.Count}
	}
	return stats
}

func CategoryStats(counts []repository.CategoryCount) []CategoryStat {
	stats := make([]CategoryStat, len(counts))
	for i, c := range counts {
		stats[i] = CategoryStat{Category: c.Category, Count: c.Count}
	}
	return stats
}

func CityStats(counts []repository.CityCount) []CityStat {
	stats := make([]CityStat, len(counts))
	for i, c := range counts {
		stats[i] = CityStat{City: c.City, CountryCode: c.CountryCode, Count: c.Count}
	}
	return stats
}
