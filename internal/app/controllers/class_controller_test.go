package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models"
	"github.com/quillacademy/api/internal/app/models/dto"
)

// fakeClassService implements services.ClassService with function fields
type fakeClassService struct {
	getAllClasses         func(ctx context.Context) ([]models.Class, error)
	getClassByID          func(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	getClassesByCategory  func(ctx context.Context, category string) ([]models.Class, error)
	getClassesByTeacher   func(ctx context.Context, email string) ([]models.Class, error)
	getRecommendedClasses func(ctx context.Context) ([]models.Class, error)
	getEnrollment         func(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	createClass           func(ctx context.Context, doc bson.M) (*dto.InsertResult, error)
	replaceClass          func(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error)
	updateClassFields     func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error)
	updateClassStatus     func(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error)
	deleteClass           func(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

func (f *fakeClassService) GetAllClasses(ctx context.Context) ([]models.Class, error) {
	return f.getAllClasses(ctx)
}

func (f *fakeClassService) GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	return f.getClassByID(ctx, id)
}

func (f *fakeClassService) GetClassesByCategory(ctx context.Context, category string) ([]models.Class, error) {
	return f.getClassesByCategory(ctx, category)
}

func (f *fakeClassService) GetClassesByTeacher(ctx context.Context, email string) ([]models.Class, error) {
	return f.getClassesByTeacher(ctx, email)
}

func (f *fakeClassService) GetRecommendedClasses(ctx context.Context) ([]models.Class, error) {
	return f.getRecommendedClasses(ctx)
}

func (f *fakeClassService) GetEnrollment(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return f.getEnrollment(ctx, id)
}

func (f *fakeClassService) CreateClass(ctx context.Context, doc bson.M) (*dto.InsertResult, error) {
	return f.createClass(ctx, doc)
}

func (f *fakeClassService) ReplaceClass(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error) {
	return f.replaceClass(ctx, id, fields)
}

func (f *fakeClassService) UpdateClassFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*dto.UpdateResult, error) {
	return f.updateClassFields(ctx, id, fields)
}

func (f *fakeClassService) UpdateClassStatus(ctx context.Context, id primitive.ObjectID, status string) (*dto.UpdateResult, error) {
	return f.updateClassStatus(ctx, id, status)
}

func (f *fakeClassService) DeleteClass(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	return f.deleteClass(ctx, id)
}

func newClassRouter(svc *fakeClassService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewClassController(svc)
	router.GET("/classes/:id", controller.GetClassByID)
	router.DELETE("/classes/:id", controller.DeleteClass)
	router.PUT("/classes/:id", controller.ReplaceClass)
	return router
}

func TestGetClassByIDMalformedID(t *testing.T) {
	router := newClassRouter(&fakeClassService{
		getClassByID: func(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
			t.Fatal("service must not run for a malformed id")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/classes/not-an-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "RES_002") {
		t.Errorf("body missing invalid-id error code: %s", w.Body.String())
	}
}

func TestGetClassByIDMissAnswersNull(t *testing.T) {
	router := newClassRouter(&fakeClassService{
		getClassByID: func(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/classes/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a miss", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Errorf("body = %q, want null", w.Body.String())
	}
}

func TestDeleteClassZeroCountStaysOK(t *testing.T) {
	router := newClassRouter(&fakeClassService{
		deleteClass: func(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
			return &dto.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/classes/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when nothing matched", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"deletedCount":0`) {
		t.Errorf("body = %s, want deletedCount 0", w.Body.String())
	}
}

func TestReplaceClassDropsUnknownFields(t *testing.T) {
	var gotFields dto.ReplaceClassRequest
	router := newClassRouter(&fakeClassService{
		replaceClass: func(ctx context.Context, id primitive.ObjectID, fields dto.ReplaceClassRequest) (*dto.UpdateResult, error) {
			gotFields = fields
			return &dto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	})

	body := `{"title":"Intro to Go","price":49.5,"enrolled_students":9999,"status":"approved"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/classes/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotFields.Title != "Intro to Go" || gotFields.Price != 49.5 {
		t.Errorf("bound fields = %+v", gotFields)
	}
}
