package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillacademy/api/internal/app/models/dto"
)

// newUpdateResult converts the driver's update acknowledgment into the
// contract shape shared by all update routes.
func newUpdateResult(result *mongo.UpdateResult) *dto.UpdateResult {
	out := &dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if result.UpsertedID != nil {
		out.UpsertedID = result.UpsertedID
	}
	return out
}
