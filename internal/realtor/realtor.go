// Package realtor implements the profile lifecycle: creation, modification
// and removal of realtor profiles, guarded by the authorization policy and
// keeping the cached highlights view coherent with committed writes.
package realtor

import (
	"context"
	"errors"
	"fmt"
	"realtors/internal/config"
	"realtors/internal/highlights"
	"realtors/internal/policy"
	"realtors/pkg/cache"
	"realtors/pkg/domain"
	"realtors/pkg/logger"
	"realtors/pkg/metrics"
	"realtors/pkg/serrors"
	"realtors/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("realtors/internal/realtor") //nolint: gochecknoglobals

// Options configure the side effects of profile writes.
type Options struct {
	// Refresh configures the highlights refresh job enqueued with every write.
	Refresh highlights.Options
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Refresh: highlights.NewOptions(cfg),
	}
}

// Deps are the collaborators of the manager.
type Deps struct {
	Storage storage.Storage
	Cache   cache.Cache
	Policy  policy.Policy
	Metrics *metrics.Metrics
}

type manager struct {
	options Options
	Deps
}

func authenticated(caller *domain.Identity) bool {
	return caller != nil && !caller.IsZero()
}

func errAuthRequired() error {
	return serrors.With(serrors.ErrUnauthorized, "authentication required")
}

func errRealtorNotFound() error {
	return serrors.With(serrors.ErrNotFound, "realtor not found")
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Create stores a profile owned by the caller. The caller's name and email are
// mirrored in the same transaction so the directory can join them.
func (m manager) Create(ctx context.Context,
	caller *domain.Identity,
	input domain.RealtorInput) (_ domain.RealtorID, err error) {
	ctx, span := tracer.Start(ctx, "realtor.Create")
	defer func() { finish(span, err) }()

	if !authenticated(caller) {
		return 0, errAuthRequired()
	}
	span.SetAttributes(attribute.String("user.id", caller.ID.String()))

	if err := ValidatePhone(input.Phone); err != nil {
		return 0, err
	}

	var created *domain.Realtor
	if err := m.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpsertUser(ctx, *caller); err != nil {
			return fmt.Errorf("could not mirror identity: %w", err)
		}

		res, err := tx.StoreRealtor(ctx, domain.Realtor{
			UserID: caller.ID,
			Phone:  input.Phone,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUniqueViolation) {
				return serrors.Wrap(serrors.ErrConflict, err, "you already have a realtor profile")
			}

			return fmt.Errorf("could not store realtor: %w", err)
		}
		created = res

		return m.enqueueRefresh(ctx, tx)
	}); err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			m.Metrics.ProfileConflicts.Inc()
		}

		return 0, fmt.Errorf("could not create realtor: %w", err)
	}

	m.Metrics.ProfilesCreated.Inc()
	m.invalidate(ctx)
	logger.Info(ctx, "realtor created",
		zap.Int64("realtorID", int64(created.ID)),
		zap.Stringer("userID", caller.ID))

	return created.ID, nil
}

// Update changes the phone of a profile. Checks run in a fixed order:
// authentication, existence, authorization, validation.
func (m manager) Update(ctx context.Context,
	caller *domain.Identity,
	id domain.RealtorID,
	input domain.RealtorInput) (err error) {
	ctx, span := tracer.Start(ctx, "realtor.Update", trace.WithAttributes(attribute.Int64("realtor.id", int64(id))))
	defer func() { finish(span, err) }()

	if !authenticated(caller) {
		return errAuthRequired()
	}

	if err := m.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := m.lockAndAuthorize(ctx, tx, *caller, id, policy.UpdateRealtor); err != nil {
			return err
		}

		if err := ValidatePhone(input.Phone); err != nil {
			return err
		}

		res, err := tx.UpdateRealtor(ctx, id, storage.RealtorUpdates{Phone: &input.Phone})
		if err != nil {
			return fmt.Errorf("could not update realtor: %w", err)
		}
		if res == nil {
			return errRealtorNotFound()
		}

		return m.enqueueRefresh(ctx, tx)
	}); err != nil {
		return fmt.Errorf("could not update realtor: %w", err)
	}

	m.Metrics.ProfilesUpdated.Inc()
	m.invalidate(ctx)
	logger.Info(ctx, "realtor updated",
		zap.Int64("realtorID", int64(id)),
		zap.Stringer("userID", caller.ID))

	return nil
}

// Delete removes a profile. Images and thumbnails are not related to profiles
// and are left in place.
func (m manager) Delete(ctx context.Context, caller *domain.Identity, id domain.RealtorID) (err error) {
	ctx, span := tracer.Start(ctx, "realtor.Delete", trace.WithAttributes(attribute.Int64("realtor.id", int64(id))))
	defer func() { finish(span, err) }()

	if !authenticated(caller) {
		return errAuthRequired()
	}

	if err := m.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := m.lockAndAuthorize(ctx, tx, *caller, id, policy.DeleteRealtor); err != nil {
			return err
		}

		res, err := tx.DeleteRealtor(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete realtor: %w", err)
		}
		if res == nil {
			return errRealtorNotFound()
		}

		return m.enqueueRefresh(ctx, tx)
	}); err != nil {
		return fmt.Errorf("could not delete realtor: %w", err)
	}

	m.Metrics.ProfilesDeleted.Inc()
	m.invalidate(ctx)
	logger.Info(ctx, "realtor deleted",
		zap.Int64("realtorID", int64(id)),
		zap.Stringer("userID", caller.ID))

	return nil
}

// Authorize is the read-only form of the update/delete gate, used to decide
// whether an edit form may be shown.
func (m manager) Authorize(ctx context.Context,
	caller *domain.Identity,
	id domain.RealtorID,
	capability policy.Capability) (*domain.Realtor, error) {
	if !authenticated(caller) {
		return nil, errAuthRequired()
	}

	res, err := m.Storage.RealtorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get realtor: %w", err)
	}
	if res == nil {
		return nil, errRealtorNotFound()
	}
	if !m.Policy.Allows(*caller, capability, *res) {
		return nil, serrors.With(serrors.ErrForbidden, "not allowed to %s", capability)
	}

	return res, nil
}

// lockAndAuthorize locks the target row for the rest of the transaction, so
// the policy decision and the write see the same owner.
func (m manager) lockAndAuthorize(ctx context.Context,
	tx storage.AllStorage,
	caller domain.Identity,
	id domain.RealtorID,
	capability policy.Capability) (*domain.Realtor, error) {
	res, err := tx.LockRealtorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not lock realtor: %w", err)
	}
	if res == nil {
		return nil, errRealtorNotFound()
	}
	if !m.Policy.Allows(caller, capability, *res) {
		return nil, serrors.With(serrors.ErrForbidden, "not allowed to %s", capability)
	}

	return res, nil
}

func (m manager) enqueueRefresh(ctx context.Context, tx storage.AllStorage) error {
	// a skipped duplicate is fine: the scheduled refresh has not started and will see this write
	if _, err := tx.AddJob(ctx, highlights.NewRefreshJob(m.options.Refresh), nil); err != nil {
		return fmt.Errorf("could not enqueue highlights refresh: %w", err)
	}

	return nil
}

// invalidate drops the highlights view after a committed write. The write has
// already happened, so a cache failure is only logged.
func (m manager) invalidate(ctx context.Context) {
	if err := m.Cache.Invalidate(ctx, cache.HighlightsSlot); err != nil {
		logger.Warn(ctx, "could not invalidate highlights", zap.Error(err))
	}
}

// New creates a Manager backed by the given collaborators.
func New(deps Deps, options Options) Manager {
	return &manager{
		options: options,
		Deps:    deps,
	}
}
