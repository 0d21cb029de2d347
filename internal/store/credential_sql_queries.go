package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-wa-sender/models"
)

const (
	credentialsTable   = "credentials"
	credentialKeyTable = "credential_keys"

	// credentialsRowID is the only row of the credentials table.
	credentialsRowID = 1
)

// sqlite uses "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectCredentialsQuery() (string, []any, error) {
	query, args, err := psql.
		Select("account", "registered", "platform", "registration_id", "created_at", "updated_at").
		From(credentialsTable).
		Where(sq.Eq{"id": credentialsRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectCredentialKeysQuery() (string, []any, error) {
	query, args, err := psql.
		Select("name", "value").
		From(credentialKeyTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertCredentialsQuery(c models.Credentials) (string, []any, error) {
	query, args, err := psql.
		Insert(credentialsTable).
		Columns("id", "account", "registered", "platform", "registration_id", "created_at", "updated_at").
		Values(credentialsRowID, c.Account, c.Registered, c.Platform, c.RegistrationID, c.CreatedAt, c.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			account = excluded.account,
			registered = excluded.registered,
			platform = excluded.platform,
			registration_id = excluded.registration_id,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCredentialKeysQuery() (string, []any, error) {
	query, args, err := psql.Delete(credentialKeyTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertCredentialKeysQuery inserts all keys in one statement. It must
// not be called with an empty map.
func buildInsertCredentialKeysQuery(keys map[string][]byte) (string, []any, error) {
	builder := psql.Insert(credentialKeyTable).Columns("name", "value")
	for _, name := range sortedKeyNames(keys) {
		builder = builder.Values(name, keys[name])
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
