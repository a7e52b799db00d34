package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/logger"
	"github.com/quillacademy/api/internal/pkg/payments"
)

// PaymentService defines the interface for payment and enrollment operations
type PaymentService interface {
	CreatePayment(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	GetPaymentClassIDs(ctx context.Context, email string) ([]bson.M, error)
	GetEnrolledClasses(ctx context.Context, email string) ([]models.Class, error)
	CreatePaymentIntent(ctx context.Context, price float64) (*dto.PaymentIntentResponse, error)
}

// paymentRepository is the store surface the payment service depends on
type paymentRepository interface {
	Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	FindClassIDsByEmail(ctx context.Context, email string) ([]bson.M, error)
}

// enrolledClassFinder resolves the class documents behind an id set
type enrolledClassFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error)
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	paymentRepo paymentRepository
	classRepo   enrolledClassFinder
	gateway     payments.IntentCreator
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo paymentRepository, classRepo enrolledClassFinder, gateway payments.IntentCreator) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		classRepo:   classRepo,
		gateway:     gateway,
	}
}

// CreatePayment appends a payment document; it doubles as the enrollment record
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	result, err := s.paymentRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating payment: %w", err)
	}
	return result, nil
}

// GetPaymentClassIDs lists the classId projections of a student's payments
func (s *paymentServiceImpl) GetPaymentClassIDs(ctx context.Context, email string) ([]bson.M, error) {
	ids, err := s.paymentRepo.FindClassIDsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}
	return ids, nil
}

// GetEnrolledClasses materializes the derived enrollment: classIds from the
// student's payments, then the class documents matching those ids. The two
// store calls are ordered but not atomic as a pair.
func (s *paymentServiceImpl) GetEnrolledClasses(ctx context.Context, email string) ([]models.Class, error) {
	paymentDocs, err := s.paymentRepo.FindClassIDsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment records: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(paymentDocs))
	for _, doc := range paymentDocs {
		raw, ok := doc["classId"].(string)
		if !ok {
			continue
		}
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// A malformed stored reference is a data problem, not the
			// caller's; skip it rather than failing the whole view.
			logger.Warn().Str("email", email).Str("classId", raw).Msg("Skipping malformed class reference in payment")
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return []models.Class{}, nil
	}

	classes, err := s.classRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled classes: %w", err)
	}
	return classes, nil
}

// CreatePaymentIntent forwards the price to the processor as integer minor
// units and returns the resulting client secret.
func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, price float64) (*dto.PaymentIntentResponse, error) {
	secret, err := s.gateway.CreatePaymentIntent(ctx, payments.MinorUnits(price))
	if err != nil {
		return nil, fmt.Errorf("error creating payment intent: %w", err)
	}
	return &dto.PaymentIntentResponse{ClientSecret: secret}, nil
}
