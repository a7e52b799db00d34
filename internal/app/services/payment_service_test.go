package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
)

type fakePaymentRepo struct {
	insert              func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	findClassIDsByEmail func(ctx context.Context, email string) ([]bson.M, error)
}

func (f *fakePaymentRepo) Insert(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.insert(ctx, doc)
}

func (f *fakePaymentRepo) FindClassIDsByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return f.findClassIDsByEmail(ctx, email)
}

type fakeClassFinder struct {
	findByIDs func(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error)
}

func (f *fakeClassFinder) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
	return f.findByIDs(ctx, ids)
}

type fakeGateway struct {
	createPaymentIntent func(ctx context.Context, amount int64) (string, error)
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	return f.createPaymentIntent(ctx, amount)
}

func TestGetEnrolledClassesJoinsPayments(t *testing.T) {
	classA := primitive.NewObjectID()
	classB := primitive.NewObjectID()

	paymentRepo := &fakePaymentRepo{
		findClassIDsByEmail: func(ctx context.Context, email string) ([]bson.M, error) {
			return []bson.M{
				{"classId": classA.Hex()},
				{"classId": classB.Hex()},
			}, nil
		},
	}
	var gotIDs []primitive.ObjectID
	classRepo := &fakeClassFinder{
		findByIDs: func(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
			gotIDs = ids
			return []models.Class{{ID: classA}, {ID: classB}}, nil
		},
	}
	svc := NewPaymentService(paymentRepo, classRepo, nil)

	classes, err := svc.GetEnrolledClasses(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("GetEnrolledClasses returned error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(classes))
	}
	if len(gotIDs) != 2 || gotIDs[0] != classA || gotIDs[1] != classB {
		t.Errorf("ids passed to class lookup = %v, want [%s %s]", gotIDs, classA.Hex(), classB.Hex())
	}
}

func TestGetEnrolledClassesSkipsMalformedReferences(t *testing.T) {
	classA := primitive.NewObjectID()

	paymentRepo := &fakePaymentRepo{
		findClassIDsByEmail: func(ctx context.Context, email string) ([]bson.M, error) {
			return []bson.M{
				{"classId": "not-a-hex-id"},
				{"classId": classA.Hex()},
				{"other": "no classId at all"},
			}, nil
		},
	}
	classRepo := &fakeClassFinder{
		findByIDs: func(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
			if len(ids) != 1 || ids[0] != classA {
				t.Errorf("ids passed to class lookup = %v, want only %s", ids, classA.Hex())
			}
			return []models.Class{{ID: classA}}, nil
		},
	}
	svc := NewPaymentService(paymentRepo, classRepo, nil)

	classes, err := svc.GetEnrolledClasses(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("GetEnrolledClasses returned error: %v", err)
	}
	if len(classes) != 1 {
		t.Errorf("got %d classes, want 1", len(classes))
	}
}

func TestGetEnrolledClassesNoPayments(t *testing.T) {
	paymentRepo := &fakePaymentRepo{
		findClassIDsByEmail: func(ctx context.Context, email string) ([]bson.M, error) {
			return []bson.M{}, nil
		},
	}
	classRepo := &fakeClassFinder{
		findByIDs: func(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
			t.Fatal("class lookup must not run when no ids resolved")
			return nil, nil
		},
	}
	svc := NewPaymentService(paymentRepo, classRepo, nil)

	classes, err := svc.GetEnrolledClasses(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("GetEnrolledClasses returned error: %v", err)
	}
	if classes == nil {
		t.Error("got nil, want empty slice so the response encodes as []")
	}
	if len(classes) != 0 {
		t.Errorf("got %d classes, want 0", len(classes))
	}
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	var gotAmount int64
	gateway := &fakeGateway{
		createPaymentIntent: func(ctx context.Context, amount int64) (string, error) {
			gotAmount = amount
			return "pi_secret_123", nil
		},
	}
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeClassFinder{}, gateway)

	result, err := svc.CreatePaymentIntent(context.Background(), 19.99)
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}
	if gotAmount != 1999 {
		t.Errorf("amount sent to gateway = %d, want 1999", gotAmount)
	}
	if result.ClientSecret != "pi_secret_123" {
		t.Errorf("client secret = %q, want pi_secret_123", result.ClientSecret)
	}
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	gatewayErr := errors.New("stripe unavailable")
	gateway := &fakeGateway{
		createPaymentIntent: func(ctx context.Context, amount int64) (string, error) {
			return "", gatewayErr
		},
	}
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeClassFinder{}, gateway)

	_, err := svc.CreatePaymentIntent(context.Background(), 10)
	if !errors.Is(err, gatewayErr) {
		t.Errorf("error chain does not contain the gateway error: %v", err)
	}
}
