package model

// ResourceStatusAvailable marks a resource eligible for allocation. Any other value is unavailable.
const ResourceStatusAvailable = "Disponible"

// ResourceType groups resources for allocation purposes.
type ResourceType struct {
	ID   uint   `json:"id_tipo_recurso" gorm:"column:id_tipo_recurso;primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;size:255;not null;uniqueIndex:uq_tipo_recurso_nombre"`
}

// TableName maps ResourceType to the tipo_recurso table.
func (ResourceType) TableName() string { return "tipo_recurso" }

// Resource is a bookable room or piece of equipment.
type Resource struct {
	ID             uint   `json:"id_recurso" gorm:"column:id_recurso;primaryKey"`
	Name           string `json:"nombre" gorm:"column:nombre;size:255;not null"`
	ResourceTypeID uint   `json:"id_tipo_recurso" gorm:"column:id_tipo_recurso;not null;index"`
	Schedule       string `json:"horario_disponibilidad" gorm:"column:horario_disponibilidad;size:255"`
	Status         string `json:"estado" gorm:"column:estado;size:50;not null;default:'Disponible';index"`

	// Relations
	ResourceType ResourceType `json:"-" gorm:"foreignKey:ResourceTypeID;references:ID"`
}

// TableName maps Resource to the recurso table.
func (Resource) TableName() string { return "recurso" }

// ResourceView is a resource joined with its type name.
type ResourceView struct {
	ID           uint   `json:"id_recurso" gorm:"column:id_recurso"`
	Name         string `json:"nombre" gorm:"column:nombre"`
	ResourceType string `json:"tipo_recurso" gorm:"column:tipo_recurso"`
	Schedule     string `json:"horario_disponibilidad" gorm:"column:horario_disponibilidad"`
	Status       string `json:"estado" gorm:"column:estado"`
}

// AvailableResource is an available resource with its schedule expanded per day,
// each entry rendered as "<Day> HH:MM-HH:MM".
type AvailableResource struct {
	ID           uint     `json:"id_recurso"`
	Name         string   `json:"nombre"`
	ResourceType string   `json:"tipo_recurso"`
	Schedule     []string `json:"horario_disponibilidad"`
}

// ResourceFilter narrows ListResources. Empty fields do not filter.
type ResourceFilter struct {
	TypeName         string
	Status           string
	NameContains     string
	ScheduleContains string
	Sort             string
}
