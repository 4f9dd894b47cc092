// Package service holds the business rules of reservations, loans, users and the resource catalogue.
package service

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock_service.go -package=mocks integraservicios/internal/service AuthService,LoanService,ReservationService,ResourceService,UserService
