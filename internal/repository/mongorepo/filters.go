package mongorepo

import (
	"regexp"

	"dinas_portal/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchCond matches search case-insensitively as a literal substring of any of the fields.
func searchCond(search string, fields ...string) bson.A {
	re := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}

	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}

	return or
}

func beritaFilter(f models.ListFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		filter["$or"] = searchCond(f.Search, "title", "summary")
	}
	if f.Published != nil {
		filter["published"] = *f.Published
	}

	return filter
}

func galeriFilter(f models.ListFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		filter["$or"] = searchCond(f.Search, "title", "description")
	}
	if f.Published != nil {
		filter["published"] = *f.Published
	}
	if f.Type.Valid() {
		filter["type"] = f.Type
	}

	return filter
}

func laporanFilter(f models.ListFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		filter["$or"] = searchCond(f.Search, "nama", "email", "message")
	}
	if f.Status.Valid() {
		filter["status"] = f.Status
	}

	return filter
}

func findOptions(f models.ListFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64(f.Offset())).SetLimit(int64(f.Limit))
	}
	return opts
}

type groupCount struct {
	ID    bson.M `bson:"_id"`
	Count int64  `bson:"count"`
}

// groupPipeline counts documents grouped by the given fields.
func groupPipeline(fields ...string) bson.A {
	id := bson.M{}
	for _, f := range fields {
		id[f] = "$" + f
	}

	return bson.A{
		bson.M{"$group": bson.M{
			"_id":   id,
			"count": bson.M{"$sum": 1},
		}},
	}
}
