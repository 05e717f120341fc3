package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/service"
	"gardenbook/pkg/exportimport/types"
)

type ImportSvc struct {
	store repository.Store
	log   zerolog.Logger
}

func NewImportService(store repository.Store, log zerolog.Logger) *ImportSvc {
	return &ImportSvc{store: store, log: log.With().Str("component", "import").Logger()}
}

var _ service.ImportService = (*ImportSvc)(nil)

// Preview validates snap for mode. It never writes.
func (s *ImportSvc) Preview(ctx context.Context, uid string, snap *types.Snapshot, mode types.Mode) (*types.Preview, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidMode, mode)
	}
	var p *types.Preview
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		p, err = validate(ctx, tx, uid, snap, mode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Import validates and, for merge and overwrite, applies snap for uid in a
// single transaction. Every created record is owned by uid whatever the
// snapshot metadata says.
//
// A returned error means storage failed and nothing was written. A Result
// with Success=false means the snapshot was rejected; nothing was written
// either.
func (s *ImportSvc) Import(ctx context.Context, uid string, snap *types.Snapshot, mode types.Mode) (*types.Result, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidMode, mode)
	}
	res := &types.Result{RunID: uuid.NewString(), Mode: mode, Issues: []types.Issue{}}
	log := s.log.With().Str("run_id", res.RunID).Str("uid", uid).Str("mode", string(mode)).Logger()
	start := time.Now()

	var im *importer
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		p, err := validate(ctx, tx, uid, snap, mode)
		if err != nil {
			return err
		}
		res.SchemaCompatible = p.SchemaCompatible
		res.Issues = p.Issues
		res.Counts = p.Counts
		res.WouldDelete = p.WouldDelete

		if !p.Valid {
			res.Message = fmt.Sprintf("%v: %d error(s)", types.ErrValidationFailed, p.ErrorCount())
			return nil
		}
		if mode == types.ModeDryRun {
			res.Success = true
			res.Message = fmt.Sprintf("dry run: %d item(s) would be imported", p.TotalItems)
			return nil
		}

		if mode == types.ModeOverwrite {
			deleted, err := tx.DeleteOwned(ctx, uid)
			if err != nil {
				return types.StorageError("delete existing", err)
			}
			res.Deleted = deleted
			res.ItemsDeleted = deleted.Total()
		}

		im = newImporter(tx, uid)
		if err := im.apply(ctx, snap); err != nil {
			return err
		}
		res.Success = true
		return nil
	})

	var refErr *types.ReferenceError
	var fieldErr *entities.FieldError
	switch {
	case err == nil:
	case errors.As(err, &refErr):
		s.rejected(res, types.Issue{
			Severity: types.SeverityError,
			Kind:     types.IssueMissingReference,
			Entity:   refErr.Entity,
			ID:       refErr.ID,
			Field:    refErr.Field,
			Message:  refErr.Error(),
		})
		log.Warn().Err(err).Msg("import rolled back")
		return res, nil
	case errors.As(err, &fieldErr):
		s.rejected(res, types.Issue{
			Severity: types.SeverityError,
			Kind:     types.IssueInvalidField,
			Field:    fieldErr.Field,
			Message:  fieldErr.Error(),
		})
		log.Warn().Err(err).Msg("import rolled back")
		return res, nil
	default:
		log.Error().Err(err).Dur("took", time.Since(start)).Msg("import rolled back")
		return nil, types.StorageError("import", err)
	}

	if res.Success && im != nil {
		res.IDMappings = im.ids
		res.Counts = im.created
		res.ItemsImported = im.created.Total()
		res.Message = fmt.Sprintf("imported %d item(s)", res.ItemsImported)
		if res.ItemsDeleted > 0 {
			res.Message += fmt.Sprintf(", deleted %d", res.ItemsDeleted)
		}
	}
	log.Info().
		Bool("success", res.Success).
		Int("imported", res.ItemsImported).
		Int("deleted", res.ItemsDeleted).
		Int("issues", len(res.Issues)).
		Dur("took", time.Since(start)).
		Msg("import finished")
	return res, nil
}

// rejected resets res after a rollback so it reports no writes.
func (s *ImportSvc) rejected(res *types.Result, is types.Issue) {
	res.Success = false
	res.Issues = append(res.Issues, is)
	res.Message = fmt.Sprintf("%v: %s", types.ErrValidationFailed, is.Message)
	res.ItemsImported = 0
	res.ItemsDeleted = 0
	res.Deleted = nil
	res.IDMappings = nil
}
