package langid_test

import (
	"testing"

	"github.com/maxbolgarin/langid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTagRecordRoundTrip(t *testing.T) {
	for _, tag := range []string{
		"und",
		"en",
		"en-US",
		"zh-Hant-TW",
		"ca-ES-valencia",
		"sl-Latn-IT-fonipa-nedis",
		"en-US-x-twain",
	} {
		id := langid.MustParse(tag)
		record := langid.NewTagRecord("user-1", id)
		assert.Equal(t, "user-1", record.Key)
		assert.True(t, id.Equal(record.Identifier()), "record(%q)", tag)
		assert.Equal(t, tag, record.Identifier().String())
	}
}

func TestTagRecordBSONRoundTrip(t *testing.T) {
	record := langid.NewTagRecord("user-2", langid.MustParse("sr-Cyrl-RS"))

	data, err := bson.Marshal(record)
	assert.NoError(t, err)

	var decoded langid.TagRecord
	assert.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
	assert.Equal(t, "sr-Cyrl-RS", decoded.Identifier().String())
}

func TestIdentifierBSONValue(t *testing.T) {
	type doc struct {
		Tag langid.LanguageIdentifier `bson:"tag"`
	}

	in := doc{Tag: langid.MustParse("zh-Hans-CN")}
	data, err := bson.Marshal(in)
	assert.NoError(t, err)

	var out doc
	assert.NoError(t, bson.Unmarshal(data, &out))
	assert.True(t, in.Tag.Equal(out.Tag))

	// Stored as canonical text
	var raw bson.M
	assert.NoError(t, bson.Unmarshal(data, &raw))
	assert.Equal(t, "zh-Hans-CN", raw["tag"])
}

func TestStoreConfigValidate(t *testing.T) {
	assert.Error(t, langid.StoreConfig{}.Validate())
	assert.Error(t, langid.StoreConfig{Address: "localhost:27017"}.Validate())
	assert.NoError(t, langid.StoreConfig{Address: "localhost:27017", DBName: "langs"}.Validate())

	// Username and password are required together
	assert.Error(t, langid.StoreConfig{
		Address: "localhost:27017", DBName: "langs", Username: "app",
	}.Validate())
	assert.NoError(t, langid.StoreConfig{
		Address: "localhost:27017", DBName: "langs", Username: "app", Password: "secret",
	}.Validate())
}
