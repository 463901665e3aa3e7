package mongorepo

import (
	"testing"

	"dinas_portal/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBeritaFilter(t *testing.T) {
	published := true

	f := beritaFilter(models.ListFilter{Search: "a.b*", Published: &published})

	assert.Equal(t, true, f["published"])

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"title": bson.M{"$regex": `a\.b\*`, "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"summary": bson.M{"$regex": `a\.b\*`, "$options": "i"}}, or[1])

	assert.Empty(t, beritaFilter(models.ListFilter{}))
}

func TestGaleriFilter(t *testing.T) {
	f := galeriFilter(models.ListFilter{Type: models.GaleriTypePhoto})
	assert.Equal(t, bson.M{"type": models.GaleriTypePhoto}, f)

	assert.Empty(t, galeriFilter(models.ListFilter{Type: "audio"}))
}

func TestLaporanFilter(t *testing.T) {
	f := laporanFilter(models.ListFilter{Search: "banjir", Status: models.LaporanStatusPending})

	assert.Equal(t, models.LaporanStatusPending, f["status"])
	assert.Len(t, f["$or"], 3)

	assert.Empty(t, laporanFilter(models.ListFilter{Status: "unknown"}))
}

func TestFindOptions(t *testing.T) {
	opts := findOptions(models.ListFilter{Page: 3, Limit: 12})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(24), *opts.Skip)
	assert.Equal(t, int64(12), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)
}

func TestGroupPipeline(t *testing.T) {
	p := groupPipeline("published", "type")

	require.Len(t, p, 1)
	group := p[0].(bson.M)["$group"].(bson.M)
	assert.Equal(t, bson.M{"published": "$published", "type": "$type"}, group["_id"])
}
