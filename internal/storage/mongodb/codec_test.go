package mongodb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type doc struct {
	ID   uuid.UUID `bson:"_id"`
	Name string    `bson:"name"`
}

func TestUUIDCodec_RoundTrip(t *testing.T) {
	reg := Registry()
	in := doc{ID: uuid.New(), Name: "berita"}

	raw, err := bson.MarshalWithRegistry(reg, in)
	require.NoError(t, err)

	subtype, data := bson.Raw(raw).Lookup("_id").Binary()
	assert.Equal(t, bsontype.BinaryUUID, subtype)
	assert.Equal(t, in.ID[:], data)

	var out doc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.Equal(t, in, out)
}

func TestIndexes(t *testing.T) {
	idx := Indexes()

	for _, coll := range []string{UsersCollection, BeritaCollection, GaleriCollection, LaporanCollection} {
		assert.NotEmpty(t, idx[coll], coll)
	}

	slug := idx[BeritaCollection][0]
	require.NotNil(t, slug.Options)
	require.NotNil(t, slug.Options.Unique)
	assert.True(t, *slug.Options.Unique)
}
