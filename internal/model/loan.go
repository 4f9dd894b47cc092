package model

// Loan records a resource handed out by an employee against a vigent reservation.
type Loan struct {
	ID            uint   `json:"id_prestamo" gorm:"column:id_prestamo;primaryKey"`
	ReservationID uint   `json:"id_reserva" gorm:"column:id_reserva;not null;index"`
	EmployeeID    uint   `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	Date          Date   `json:"fecha_prestamo" gorm:"column:fecha_prestamo;type:date;not null"`
	Time          string `json:"hora_prestamo" gorm:"column:hora_prestamo;size:5;not null"`

	// Relations
	Reservation Reservation `json:"-" gorm:"foreignKey:ReservationID;references:ID"`
	Employee    Employee    `json:"-" gorm:"foreignKey:EmployeeID;references:ID"`
}

// TableName maps Loan to the prestamo table.
func (Loan) TableName() string { return "prestamo" }

// Return records a loaned resource coming back. The receiving employee is checked, not stored.
type Return struct {
	ID     uint   `json:"id_devolucion" gorm:"column:id_devolucion;primaryKey"`
	LoanID uint   `json:"id_prestamo" gorm:"column:id_prestamo;not null;index"`
	Date   Date   `json:"fecha_devolucion" gorm:"column:fecha_devolucion;type:date;not null"`
	Time   string `json:"hora_devolucion" gorm:"column:hora_devolucion;size:5;not null"`

	// Relations
	Loan Loan `json:"-" gorm:"foreignKey:LoanID;references:ID"`
}

// TableName maps Return to the devolucion table.
func (Return) TableName() string { return "devolucion" }

// LoanView is a loan joined with its reservation.
type LoanView struct {
	ID            uint   `json:"id_prestamo" gorm:"column:id_prestamo"`
	Date          Date   `json:"fecha_prestamo" gorm:"column:fecha_prestamo"`
	Time          string `json:"hora_prestamo" gorm:"column:hora_prestamo"`
	EmployeeID    uint   `json:"id_empleado" gorm:"column:id_empleado"`
	ReservationID uint   `json:"id_reserva" gorm:"column:id_reserva"`
	ResourceID    uint   `json:"id_recurso" gorm:"column:id_recurso"`
}
