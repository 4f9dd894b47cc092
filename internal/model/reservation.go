package model

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "Vigente"
	ReservationStatusCancelled ReservationStatus = "Cancelada"
	ReservationStatusFinished  ReservationStatus = "Finalizada"
	ReservationStatusPast      ReservationStatus = "Pasado"
	ReservationStatusFuture    ReservationStatus = "Futura"
)

// Valid reports whether s is one of the known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusCancelled, ReservationStatusFinished,
		ReservationStatusPast, ReservationStatusFuture:
		return true
	}
	return false
}

// Reservation books one resource at one (date, time) slot.
// The slot index makes (resource, date, time) unique at the storage level.
type Reservation struct {
	ID         uint              `json:"id_reserva" gorm:"column:id_reserva;primaryKey"`
	UserID     uint              `json:"id_usuario" gorm:"column:id_usuario;not null;index"`
	ResourceID uint              `json:"id_recurso" gorm:"column:id_recurso;not null;uniqueIndex:uq_reserva_slot,priority:1"`
	Date       Date              `json:"fecha_reserva" gorm:"column:fecha_reserva;type:date;not null;uniqueIndex:uq_reserva_slot,priority:2"`
	Time       string            `json:"hora_reserva" gorm:"column:hora_reserva;size:5;not null;uniqueIndex:uq_reserva_slot,priority:3"`
	Status     ReservationStatus `json:"estado" gorm:"column:estado;size:20;not null;default:'Vigente';index"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Resource Resource `json:"-" gorm:"foreignKey:ResourceID;references:ID"`
}

// TableName maps Reservation to the reserva table.
func (Reservation) TableName() string { return "reserva" }

// ReservationView is a reservation joined with user and resource names.
type ReservationView struct {
	ID           uint              `json:"id_reserva" gorm:"column:id_reserva"`
	Date         Date              `json:"fecha_reserva" gorm:"column:fecha_reserva"`
	Time         string            `json:"hora_reserva" gorm:"column:hora_reserva"`
	Status       ReservationStatus `json:"estado" gorm:"column:estado"`
	UserName     string            `json:"nombre_usuario" gorm:"column:nombre_usuario"`
	ResourceName string            `json:"nombre_recurso" gorm:"column:nombre_recurso"`
}

// ReservationKind is the period filter of ListReservations.
type ReservationKind string

const (
	ReservationKindActive ReservationKind = "Vigentes"
	ReservationKindPast   ReservationKind = "Pasadas"
	ReservationKindFuture ReservationKind = "Futuras"
)

// Status returns the stored status a kind selects.
func (k ReservationKind) Status() (ReservationStatus, bool) {
	switch k {
	case ReservationKindActive:
		return ReservationStatusActive, true
	case ReservationKindPast:
		return ReservationStatusPast, true
	case ReservationKindFuture:
		return ReservationStatusFuture, true
	}
	return "", false
}

// ReservationFilter narrows ListReservations. Zero fields do not filter.
type ReservationFilter struct {
	UserNameContains string
	Kind             ReservationKind
	From             *Date
	To               *Date
}
