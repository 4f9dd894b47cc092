package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	apperr "integraservicios/internal/errors"
	"integraservicios/internal/model"
)

// gorm rebinds "?" to the dialect's own placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// resourceSortColumns is the closed set of sort keys accepted by ListResources.
var resourceSortColumns = map[string]string{
	"id_recurso":             "r.id_recurso",
	"nombre":                 "r.nombre",
	"tipo_recurso":           "t.nombre",
	"horario_disponibilidad": "r.horario_disponibilidad",
	"estado":                 "r.estado",
}

// likeEscaper makes LIKE wildcards in user input match literally. '!' needs no
// quoting in any supported dialect, unlike a backslash.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// containsFold matches a case-insensitive substring of col.
func containsFold(col, s string) sq.Sqlizer {
	return sq.Expr("LOWER("+col+") LIKE ? ESCAPE '!'", containsPattern(s))
}

// resourceOrderBy resolves a sort key, "-" prefixed for descending.
func resourceOrderBy(key string) (string, error) {
	if key == "" {
		return "r.id_recurso", nil
	}
	dir := " ASC"
	if strings.HasPrefix(key, "-") {
		dir = " DESC"
		key = key[1:]
	}
	col, ok := resourceSortColumns[key]
	if !ok {
		return "", apperr.ErrInvalidSort
	}
	return col + dir, nil
}

func buildResourceQuery(filter model.ResourceFilter) (string, []interface{}, error) {
	order, err := resourceOrderBy(filter.Sort)
	if err != nil {
		return "", nil, err
	}

	q := builder.
		Select(
			"r.id_recurso",
			"r.nombre",
			"t.nombre AS tipo_recurso",
			"r.horario_disponibilidad",
			"r.estado",
		).
		From("recurso r").
		Join("tipo_recurso t ON t.id_tipo_recurso = r.id_tipo_recurso")

	if filter.TypeName != "" {
		q = q.Where(sq.Eq{"t.nombre": filter.TypeName})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"r.estado": filter.Status})
	}
	if filter.NameContains != "" {
		q = q.Where(containsFold("r.nombre", filter.NameContains))
	}
	if filter.ScheduleContains != "" {
		q = q.Where(containsFold("r.horario_disponibilidad", filter.ScheduleContains))
	}

	return q.OrderBy(order).ToSql()
}

func buildReservationQuery(filter model.ReservationFilter) (string, []interface{}, error) {
	q := builder.
		Select(
			"res.id_reserva",
			"res.fecha_reserva",
			"res.hora_reserva",
			"res.estado",
			"u.nombre AS nombre_usuario",
			"r.nombre AS nombre_recurso",
		).
		From("reserva res").
		Join("usuario u ON u.id_usuario = res.id_usuario").
		Join("recurso r ON r.id_recurso = res.id_recurso")

	if filter.UserNameContains != "" {
		q = q.Where(containsFold("u.nombre", filter.UserNameContains))
	}
	if filter.Kind != "" {
		status, ok := filter.Kind.Status()
		if !ok {
			return "", nil, apperr.ErrInvalidFilter
		}
		q = q.Where(sq.Eq{"res.estado": string(status)})
	}
	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"res.fecha_reserva": filter.From.String()})
	}
	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"res.fecha_reserva": filter.To.String()})
	}

	return q.OrderBy("res.fecha_reserva DESC", "res.hora_reserva DESC").ToSql()
}

func buildLoansByUserQuery(userID uint) (string, []interface{}, error) {
	return builder.
		Select(
			"p.id_prestamo",
			"p.fecha_prestamo",
			"p.hora_prestamo",
			"p.id_empleado",
			"res.id_reserva",
			"res.id_recurso",
		).
		From("prestamo p").
		Join("reserva res ON res.id_reserva = p.id_reserva").
		Where(sq.Eq{"res.id_usuario": userID}).
		OrderBy("p.id_prestamo").
		ToSql()
}
