package domain

// CountryCode - код поддерживаемой страны
type CountryCode string

const (
	CountryHN CountryCode = "HN"
	CountrySV CountryCode = "SV"
	CountryCR CountryCode = "CR"
	CountryPA CountryCode = "PA"
)

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains проверяет, что точка лежит внутри прямоугольника
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Country - метаданные страны: название, эмодзи флага, уровни
// административной иерархии и ограничивающий прямоугольник
type Country struct {
	Name   string      `json:"name"`
	Emoji  string      `json:"emoji"`
	Levels []string    `json:"levels"`
	Bounds BoundingBox `json:"bounds"`
}

// Countries - все поддерживаемые страны. HN и SV используют двухуровневую
// иерархию, CR и PA - трёхуровневую.
var Countries = map[CountryCode]Country{
	CountryHN: {
		Name:   "Honduras",
		Emoji:  "🇭🇳",
		Levels: []string{"departamento", "municipio"},
		Bounds: BoundingBox{MinLat: 12.0, MaxLat: 17.0, MinLon: -89.5, MaxLon: -83.0},
	},
	CountrySV: {
		Name:   "El Salvador",
		Emoji:  "🇸🇻",
		Levels: []string{"departamento", "municipio"},
		Bounds: BoundingBox{MinLat: 13.0, MaxLat: 14.5, MinLon: -90.0, MaxLon: -87.5},
	},
	CountryCR: {
		Name:   "Costa Rica",
		Emoji:  "🇨🇷",
		Levels: []string{"provincia", "canton", "distrito"},
		Bounds: BoundingBox{MinLat: 8.0, MaxLat: 11.5, MinLon: -86.0, MaxLon: -82.5},
	},
	CountryPA: {
		Name:   "Panamá",
		Emoji:  "🇵🇦",
		Levels: []string{"provincia", "distrito", "corregimiento"},
		Bounds: BoundingBox{MinLat: 7.0, MaxLat: 10.0, MinLon: -83.0, MaxLon: -77.0},
	},
}

// IsSupported проверяет, что код страны известен системе
func (c CountryCode) IsSupported() bool {
	_, ok := Countries[c]
	return ok
}
