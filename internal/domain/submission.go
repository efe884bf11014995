package domain

import "time"

// Submission - сырой payload от клиентского приложения. Обязательны только
// имя и координаты; административные поля зависят от страны и могут
// отсутствовать.
type Submission struct {
	Name    string      `json:"name"`
	Coords  string      `json:"coords"`
	Country CountryCode `json:"pais"`
	Type    string      `json:"type"`

	Departamento  string `json:"departamento,omitempty"`
	Municipio     string `json:"municipio,omitempty"`
	Provincia     string `json:"provincia,omitempty"`
	Canton        string `json:"canton,omitempty"`
	Distrito      string `json:"distrito,omitempty"`
	Corregimiento string `json:"corregimiento,omitempty"`

	DetectedAddress string `json:"detected,omitempty"`
}

// Hierarchy - Schema Normalizer: отображает сырые поля заявки в канонический
// вариант иерархии страны. Отсутствующие значения заполняются placeholder'ом.
func (s Submission) Hierarchy() (AdminHierarchy, bool) {
	switch s.Country {
	case CountryHN, CountrySV:
		return DeptoMunicipio{
			Departamento: orPlaceholder(s.Departamento),
			Municipio:    orPlaceholder(s.Municipio),
		}, true
	case CountryCR:
		return ProvinciaCantonDistrito{
			Provincia: orPlaceholder(s.Provincia),
			Canton:    orPlaceholder(s.Canton),
			Distrito:  orPlaceholder(s.Distrito),
		}, true
	case CountryPA:
		return ProvinciaDistritoCorregimiento{
			Provincia:     orPlaceholder(s.Provincia),
			Distrito:      orPlaceholder(s.Distrito),
			Corregimiento: orPlaceholder(s.Corregimiento),
		}, true
	default:
		return nil, false
	}
}

// PendingRequest - заявка в ожидании решения модератора. Владелец - только
// pending store; уничтожается ровно один раз при approve или reject.
type PendingRequest struct {
	ID         string      `json:"id"`
	Submission Submission  `json:"submission"`
	ChatID     int64       `json:"chat_id"`
	Country    CountryCode `json:"country"`
	CreatedAt  time.Time   `json:"created_at"`
}
