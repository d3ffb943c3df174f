package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/churn-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
)

const (
	modelArtifactsTable = "model_artifacts ma"
)

type ModelArtifactRepository interface {
	Save(ctx context.Context, artifact *domain.TrainedModelArtifact) error
	GetCurrent(ctx context.Context) (*domain.TrainedModelArtifact, error)
	GetByVersion(ctx context.Context, version string) (*domain.TrainedModelArtifact, error)
}

type modelArtifactRepository struct {
	conn postgres.Conn
}

func NewModelArtifactRepository(conn postgres.Conn) ModelArtifactRepository {
	return &modelArtifactRepository{
		conn: conn,
	}
}

// Save grava um novo artefato e o promove a corrente na mesma transação.
// Artefatos anteriores permanecem na tabela; a tabela é append-only.
func (r *modelArtifactRepository) Save(ctx context.Context, artifact *domain.TrainedModelArtifact) error {
	payload, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("erro ao serializar artefato para JSON: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		demote, demoteArgs, err := squirrel.
			Update("model_artifacts").
			Set("is_current", false).
			Where(squirrel.Eq{"is_current": true}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, demote, demoteArgs...); err != nil {
			return fmt.Errorf("erro ao rebaixar artefato corrente: %w", err)
		}

		insert, insertArgs, err := squirrel.StatementBuilder.
			Insert("model_artifacts").
			Columns("version", "artifact", "trained_at", "is_current").
			Values(artifact.Version, payload, artifact.TrainedAt, true).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insert, insertArgs...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("%w: erro no banco de dados: %v (código: %s)", ErrArtifactPersistence, pqErr, pqErr.Code)
			}
			return fmt.Errorf("%w: erro ao gravar artefato: %v", ErrArtifactPersistence, err)
		}

		return nil
	})
}

// GetCurrent retorna o artefato corrente, ou nil quando nenhum modelo foi
// treinado ainda
func (r *modelArtifactRepository) GetCurrent(ctx context.Context) (*domain.TrainedModelArtifact, error) {
	query, args, err := squirrel.
		Select("ma.artifact").
		From(modelArtifactsTable).
		Where(squirrel.Eq{"ma.is_current": true}).
		OrderBy("ma.trained_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanArtifact(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *modelArtifactRepository) GetByVersion(ctx context.Context, version string) (*domain.TrainedModelArtifact, error) {
	query, args, err := squirrel.
		Select("ma.artifact").
		From(modelArtifactsTable).
		Where(squirrel.Eq{"ma.version": version}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanArtifact(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *modelArtifactRepository) scanArtifact(row *sql.Row) (*domain.TrainedModelArtifact, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: erro ao escanear artefato: %v", ErrArtifactPersistence, err)
	}

	artifact := &domain.TrainedModelArtifact{}
	if err := json.Unmarshal(payload, artifact); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do artefato: %w", err)
	}

	return artifact, nil
}
