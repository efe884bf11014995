package domain

import "time"

// StoredRecord - запись в удалённом JSON-документе. Отклонённые заявки сюда
// не попадают, поэтому Approved всегда true на записи.
type StoredRecord struct {
	Name                  string      `json:"name"`
	Lat                   float64     `json:"lat"`
	Lon                   float64     `json:"lon"`
	Country               CountryCode `json:"pais"`
	Type                  string      `json:"type"`
	Added                 string      `json:"added"`
	Approved              bool        `json:"approved"`
	Source                string      `json:"source"`
	DetectedAutomatically bool        `json:"detected_automatically"`
	FullAddress           string      `json:"full_address"`

	// Поля варианта иерархии; заполняется ровно набор своей страны
	Departamento  string `json:"departamento,omitempty"`
	Municipio     string `json:"municipio,omitempty"`
	Provincia     string `json:"provincia,omitempty"`
	Canton        string `json:"canton,omitempty"`
	Distrito      string `json:"distrito,omitempty"`
	Corregimiento string `json:"corregimiento,omitempty"`
}

const (
	defaultRecordType = "colonia"
	recordSource      = "user_submission"
)

// NewStoredRecord собирает каноническую запись из заявки. lat/lon приходят
// уже распарсенными (best effort на стороне merge).
func NewStoredRecord(sub Submission, lat, lon float64, now time.Time) (StoredRecord, bool) {
	hierarchy, ok := sub.Hierarchy()
	if !ok {
		return StoredRecord{}, false
	}

	recordType := sub.Type
	if recordType == "" {
		recordType = defaultRecordType
	}

	rec := StoredRecord{
		Name:                  sub.Name,
		Lat:                   lat,
		Lon:                   lon,
		Country:               sub.Country,
		Type:                  recordType,
		Added:                 now.Format(time.RFC3339),
		Approved:              true,
		Source:                recordSource,
		DetectedAutomatically: true,
		FullAddress:           sub.DetectedAddress,
	}

	switch h := hierarchy.(type) {
	case DeptoMunicipio:
		rec.Departamento = h.Departamento
		rec.Municipio = h.Municipio
	case ProvinciaCantonDistrito:
		rec.Provincia = h.Provincia
		rec.Canton = h.Canton
		rec.Distrito = h.Distrito
	case ProvinciaDistritoCorregimiento:
		rec.Provincia = h.Provincia
		rec.Distrito = h.Distrito
		rec.Corregimiento = h.Corregimiento
	}

	return rec, true
}

// LocationsDocument - весь удалённый JSON-файл: партиции по странам,
// внутри партиции - записи по slug-ключам
type LocationsDocument map[CountryCode]map[string]StoredRecord

// EnsurePartitions создаёт пустые партиции для всех известных стран
func (d LocationsDocument) EnsurePartitions() {
	for code := range Countries {
		if _, ok := d[code]; !ok {
			d[code] = make(map[string]StoredRecord)
		}
	}
}

// HasKey проверяет занятость ключа в партиции страны
func (d LocationsDocument) HasKey(country CountryCode, key string) bool {
	partition, ok := d[country]
	if !ok {
		return false
	}
	_, ok = partition[key]
	return ok
}
