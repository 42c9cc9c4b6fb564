package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}

	assert.NotNil(t, client.GetDB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}

	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
