package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

var reactionCounters = map[domain.ReactionType]string{
	domain.ReactionUpvote:   counterUpvotes,
	domain.ReactionDownvote: counterDownvotes,
	domain.ReactionFavorite: counterFavorites,
}

// PostgresReactionRepository implements ReactionRepository using PostgreSQL.
type PostgresReactionRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository.
func NewPostgresReactionRepository(pool *pgxpool.Pool) *PostgresReactionRepository {
	return &PostgresReactionRepository{pool: pool, now: time.Now}
}

// Vote applies an exclusive up/down vote. Repeating the caller's current vote removes it;
// voting the other way replaces it.
func (r *PostgresReactionRepository) Vote(ctx context.Context, contentID, userID string, vote domain.ReactionType) (domain.VoteSummary, error) {
	if !vote.IsVote() {
		return domain.VoteSummary{}, fmt.Errorf("vote %s: %w", vote, domain.ErrInvalidInput)
	}
	day := r.now()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.VoteSummary{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Votes on one content item are serialized.
	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM content WHERE id = $1 FOR UPDATE`, contentID).Scan(&locked)
	if err != nil {
		return domain.VoteSummary{}, mapError("lock content", err)
	}

	current, err := currentVote(ctx, tx, contentID, userID)
	if err != nil {
		return domain.VoteSummary{}, err
	}

	removed := false
	if current != nil {
		if err := deleteReaction(ctx, tx, contentID, userID, *current, day); err != nil {
			return domain.VoteSummary{}, err
		}
		removed = *current == vote
	}
	if !removed {
		if err := insertReaction(ctx, tx, contentID, userID, vote, day); err != nil {
			return domain.VoteSummary{}, err
		}
	}

	summary, err := voteCounts(ctx, tx, contentID)
	if err != nil {
		return domain.VoteSummary{}, err
	}
	if removed {
		summary.Removed = true
	} else {
		v := vote
		summary.UserVote = &v
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.VoteSummary{}, fmt.Errorf("commit vote: %w", err)
	}
	return summary, nil
}

// Toggle adds a non-vote reaction, or removes it when already present.
func (r *PostgresReactionRepository) Toggle(ctx context.Context, contentID, userID string, reactionType domain.ReactionType) (domain.ToggleResult, error) {
	day := r.now()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM reactions WHERE content_id = $1 AND user_id = $2 AND type = $3`,
		contentID, userID, string(reactionType))
	if err != nil {
		return domain.ToggleResult{}, mapError("delete reaction", err)
	}

	var result domain.ToggleResult
	if tag.RowsAffected() > 0 {
		if err := bumpDaily(ctx, tx, contentID, day, reactionCounters[reactionType], -1); err != nil {
			return domain.ToggleResult{}, err
		}
		result.Removed = true
	} else {
		if err := insertReaction(ctx, tx, contentID, userID, reactionType, day); err != nil {
			return domain.ToggleResult{}, err
		}
		result.Active = true
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ToggleResult{}, fmt.Errorf("commit reaction: %w", err)
	}
	return result, nil
}

// Summary returns vote counts and, when userID is set, that user's vote.
func (r *PostgresReactionRepository) Summary(ctx context.Context, contentID, userID string) (domain.VoteSummary, error) {
	summary, err := voteCounts(ctx, r.pool, contentID)
	if err != nil {
		return summary, err
	}
	if userID == "" {
		return summary, nil
	}

	summary.UserVote, err = currentVote(ctx, r.pool, contentID, userID)
	return summary, err
}

// Has reports whether the user holds a reaction of the given type.
func (r *PostgresReactionRepository) Has(ctx context.Context, contentID, userID string, reactionType domain.ReactionType) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM reactions WHERE content_id = $1 AND user_id = $2 AND type = $3)
	`, contentID, userID, string(reactionType)).Scan(&has)
	if err != nil {
		return false, mapError("check reaction", err)
	}
	return has, nil
}

// ListContent returns the content a user reacted to with reactionType, most recent first.
func (r *PostgresReactionRepository) ListContent(ctx context.Context, userID string, reactionType domain.ReactionType) ([]domain.Content, error) {
	return queryContent(ctx, r.pool, "list reacted content", `SELECT `+contentColumns+contentFrom+`
		JOIN reactions r ON r.content_id = c.id
		WHERE r.user_id = $1 AND r.type = $2
		ORDER BY r.created_at DESC, c.id`, userID, string(reactionType))
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func currentVote(ctx context.Context, q queryRower, contentID, userID string) (*domain.ReactionType, error) {
	var t string
	err := q.QueryRow(ctx, `
		SELECT type FROM reactions
		WHERE content_id = $1 AND user_id = $2 AND type IN ('UPVOTE', 'DOWNVOTE')
		ORDER BY created_at DESC
		LIMIT 1
	`, contentID, userID).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get current vote", err)
	}
	vote := domain.ReactionType(t)
	return &vote, nil
}

func voteCounts(ctx context.Context, q queryRower, contentID string) (domain.VoteSummary, error) {
	var s domain.VoteSummary
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE type = 'UPVOTE'),
		       COUNT(*) FILTER (WHERE type = 'DOWNVOTE')
		FROM reactions
		WHERE content_id = $1
	`, contentID).Scan(&s.Upvotes, &s.Downvotes)
	if err != nil {
		return s, mapError("count votes", err)
	}
	return s, nil
}

func insertReaction(ctx context.Context, tx pgx.Tx, contentID, userID string, t domain.ReactionType, day time.Time) error {
	if _, err := tx.Exec(ctx, `INSERT INTO reactions (content_id, user_id, type) VALUES ($1, $2, $3)`,
		contentID, userID, string(t)); err != nil {
		return mapError("insert reaction", err)
	}
	return bumpDaily(ctx, tx, contentID, day, reactionCounters[t], 1)
}

func deleteReaction(ctx context.Context, tx pgx.Tx, contentID, userID string, t domain.ReactionType, day time.Time) error {
	if _, err := tx.Exec(ctx, `DELETE FROM reactions WHERE content_id = $1 AND user_id = $2 AND type = $3`,
		contentID, userID, string(t)); err != nil {
		return mapError("delete reaction", err)
	}
	return bumpDaily(ctx, tx, contentID, day, reactionCounters[t], -1)
}
