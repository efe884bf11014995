package domain

// AdminHierarchy - закрытый tagged-variant тип административной иерархии.
// Каждая страна конструирует ровно свой вариант (см. Submission.Hierarchy),
// потребители делают исчерпывающий type switch: новая страна не может быть
// добавлена без обновления нормализатора и композера.
type AdminHierarchy interface {
	isAdminHierarchy()
}

// DeptoMunicipio - двухуровневая иерархия Гондураса и Сальвадора
type DeptoMunicipio struct {
	Departamento string
	Municipio    string
}

// ProvinciaCantonDistrito - трёхуровневая иерархия Коста-Рики
type ProvinciaCantonDistrito struct {
	Provincia string
	Canton    string
	Distrito  string
}

// ProvinciaDistritoCorregimiento - трёхуровневая иерархия Панамы
type ProvinciaDistritoCorregimiento struct {
	Provincia     string
	Distrito      string
	Corregimiento string
}

func (DeptoMunicipio) isAdminHierarchy()                 {}
func (ProvinciaCantonDistrito) isAdminHierarchy()        {}
func (ProvinciaDistritoCorregimiento) isAdminHierarchy() {}

// PlaceholderAdminValue подставляется вместо отсутствующих
// административных полей
const PlaceholderAdminValue = "Por determinar"

func orPlaceholder(v string) string {
	if v == "" {
		return PlaceholderAdminValue
	}
	return v
}
