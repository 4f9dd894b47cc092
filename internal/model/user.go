package model

// User represents a registered user of the reservation system.
type User struct {
	ID           uint   `json:"id_usuario" gorm:"column:id_usuario;primaryKey"`
	Name         string `json:"nombre" gorm:"column:nombre;size:255;not null"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex:uq_usuario_email;size:255;not null"`
	Phone        string `json:"telefono" gorm:"column:telefono;size:50"`
	PasswordHash string `json:"-" gorm:"column:contrasena;size:255;not null"` // Never expose in JSON
}

// TableName maps User to the usuario table.
func (User) TableName() string { return "usuario" }

// UserUpdate carries the optional fields of a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// Empty reports whether the update carries no field.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Password == nil
}

// Employee is a staff member who hands out and receives loaned resources.
type Employee struct {
	ID   uint   `json:"id_empleado" gorm:"column:id_empleado;primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;size:255;not null"`
}

// TableName maps Employee to the empleado table.
func (Employee) TableName() string { return "empleado" }
