package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"

	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/shared/constant"
	"tourbook/shared/dto"
)

// ErrNoRows is returned when a statement that must yield a row yields none.
var ErrNoRows = errors.New("no rows returned")

type column struct {
	name  string
	table string
	alias string
}

// Repository builds and runs SQL for T from its struct tags:
//
//	db        result column name (required for the field to be mapped)
//	table     owning table when the column comes from a join, defaults to the repository table
//	column    source column name when it differs from db, selected as "table.column AS db"
//	generated store-assigned column, never written on insert
//
// A T with a GetJoinQuery() string method gets that clause appended after FROM.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	joinQueryStr := ""
	if joiner, ok := any(zero).(interface{ GetJoinQuery() string }); ok {
		joinQueryStr = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		columns:       columns,
		join:          joinQueryStr,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

// InsertReturning inserts model and reads the stored row back, joins included, in one
// statement. The insert runs in a CTE named after the table so the select list and
// the join clause resolve against the new row.
func (repo *Repository[T]) InsertReturning(ctx context.Context, model T) (result T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertReturning"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := repo.InsertReturningQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("entity", repo.entitas).Msg("failed to prepare insert statement")

		return result, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &result, model)
	if errors.Is(err, sql.ErrNoRows) {
		return result, ErrNoRows
	}

	if err != nil {
		log.Error().Err(err).Str("entity", repo.entitas).Msg("failed to insert data")

		return result, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return result, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args := repo.SelectQuery(params, filter)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("entity", repo.entitas).Msg("failed to prepare select statement")

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		log.Error().Err(err).Str("entity", repo.entitas).Msg("failed to select data")

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// CallFunction evaluates a zero-argument SQL function on the write connection and
// scans its single result into dest.
func (repo *Repository[T]) CallFunction(ctx context.Context, function string, dest any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("CallFunction"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s()", function)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, dest, query)
	if err != nil {
		log.Error().Err(err).Str("function", function).Msg("failed to call function")

		return fmt.Errorf("failed to call %s: %w", function, err)
	}

	return nil
}

// InsertReturningQuery is the statement InsertReturning prepares.
func (repo *Repository[T]) InsertReturningQuery() string {
	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return fmt.Sprintf(
		"WITH %s AS (INSERT INTO %s (%s) VALUES (%s) RETURNING *) SELECT %s FROM %s %s",
		repo.table,
		repo.table,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		repo.selectColumns(),
		repo.table,
		repo.join,
	)
}

// SelectQuery is the statement GetAll prepares, with its named arguments.
func (repo *Repository[T]) SelectQuery(params dto.QueryParams, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where != "" {
		where = "WHERE " + where
	}

	parts := []string{"SELECT", repo.selectColumns(), "FROM", repo.table}
	for _, part := range []string{repo.join, where, params.Ordering()} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " "), args
}

func (repo *Repository[T]) selectColumns() string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		switch {
		case col.table == "":
			columns = append(columns, col.name)
		case col.alias != "":
			columns = append(columns, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return strings.Join(columns, ", ")
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		tableField := field.Tag.Get("table")
		if tableField == "" {
			tableField = table
		}

		if tableField == table && field.Tag.Get("generated") != "true" {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableField})
		}
	}

	return columns, insertColumns
}
