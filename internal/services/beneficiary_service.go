package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
	"banking-client/internal/validation"
)

var (
	ErrBeneficiaryNotFound  = errors.New("beneficiary not found")
	ErrNoBeneficiarySaved   = errors.New("ledger returned no beneficiary")
	ErrInvalidBeneficiaryID = errors.New("beneficiary id is required")
)

// BeneficiaryService keeps the user's saved transfer destinations
type BeneficiaryService struct {
	mu            sync.RWMutex
	beneficiaries []models.Beneficiary

	gateway   gateway.Gateway
	mirror    repositories.MirrorRepositoryInterface
	validator *validation.Validator
	logger    *slog.Logger
}

func NewBeneficiaryService(gw gateway.Gateway, mirror repositories.MirrorRepositoryInterface, logger *slog.Logger) *BeneficiaryService {
	return &BeneficiaryService{
		beneficiaries: []models.Beneficiary{},
		gateway:       gw,
		mirror:        mirror,
		validator:     validation.GetValidator(),
		logger:        logger,
	}
}

// Load fetches the user's beneficiaries. On failure the mirrored list is
// restored and the error is returned.
func (s *BeneficiaryService) Load(ctx context.Context, userID models.ID) error {
	beneficiaries, err := s.gateway.GetBeneficiaries(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load beneficiaries, using mirror",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		s.Restore(ctx)
		return fmt.Errorf("failed to load beneficiaries: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.beneficiaries = make([]models.Beneficiary, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		if b.UserID.IsZero() {
			b.UserID = userID
		}
		s.beneficiaries = append(s.beneficiaries, b)
	}
	s.persistLocked(ctx)
	return nil
}

func (s *BeneficiaryService) List(userID models.ID) []models.Beneficiary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Beneficiary{}
	for _, b := range s.beneficiaries {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BeneficiaryService) Add(ctx context.Context, userID models.ID, req dto.BeneficiaryRequest) (*models.Beneficiary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	beneficiary := models.Beneficiary{
		UserID:        userID,
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		AccountName:   strings.TrimSpace(req.AccountName),
		BankName:      req.BankName,
		Nickname:      req.Nickname,
	}

	saved, err := s.gateway.AddBeneficiary(ctx, userID, beneficiary)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrNoBeneficiarySaved
	}
	if saved.UserID.IsZero() {
		saved.UserID = userID
	}

	s.mu.Lock()
	s.beneficiaries = append(s.beneficiaries, *saved)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return saved, nil
}

func (s *BeneficiaryService) Update(ctx context.Context, beneficiaryID models.ID, req dto.BeneficiaryRequest) (*models.Beneficiary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	current, ok := s.find(beneficiaryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBeneficiaryNotFound, beneficiaryID)
	}

	current.AccountNumber = strings.TrimSpace(req.AccountNumber)
	current.AccountName = strings.TrimSpace(req.AccountName)
	current.BankName = req.BankName
	current.Nickname = req.Nickname

	saved, err := s.gateway.UpdateBeneficiary(ctx, current)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = &current
	}
	if saved.UserID.IsZero() {
		saved.UserID = current.UserID
	}

	s.mu.Lock()
	for i := range s.beneficiaries {
		if s.beneficiaries[i].ID == beneficiaryID {
			s.beneficiaries[i] = *saved
		}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	return saved, nil
}

func (s *BeneficiaryService) Delete(ctx context.Context, beneficiaryID models.ID) error {
	if beneficiaryID.IsZero() {
		return ErrInvalidBeneficiaryID
	}

	if err := s.gateway.DeleteBeneficiary(ctx, beneficiaryID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.beneficiaries[:0]
	for _, b := range s.beneficiaries {
		if b.ID != beneficiaryID {
			kept = append(kept, b)
		}
	}
	s.beneficiaries = kept
	s.persistLocked(ctx)
	return nil
}

func (s *BeneficiaryService) DestinationFor(beneficiaryID models.ID) (string, error) {
	beneficiary, ok := s.find(beneficiaryID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBeneficiaryNotFound, beneficiaryID)
	}
	return beneficiary.AccountNumber, nil
}

func (s *BeneficiaryService) Restore(ctx context.Context) {
	var beneficiaries []models.Beneficiary
	found, err := repositories.LoadJSON(ctx, s.mirror, models.MirrorKeyBeneficiaries, &beneficiaries)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to restore beneficiaries from mirror", slog.String("error", err.Error()))
		return
	}
	if !found {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.beneficiaries = beneficiaries
}

func (s *BeneficiaryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beneficiaries = []models.Beneficiary{}
}

func (s *BeneficiaryService) find(beneficiaryID models.ID) (models.Beneficiary, bool) {
	if beneficiaryID.IsZero() {
		return models.Beneficiary{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.beneficiaries {
		if b.ID == beneficiaryID {
			return b, true
		}
	}
	return models.Beneficiary{}, false
}

func (s *BeneficiaryService) persistLocked(ctx context.Context) {
	if err := repositories.SaveJSON(ctx, s.mirror, models.MirrorKeyBeneficiaries, s.beneficiaries); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror beneficiaries", slog.String("error", err.Error()))
	}
}
