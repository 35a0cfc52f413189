package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensor-ops/internal/model"
)

type fakeManualRepo struct {
	docs []model.ManualDoc
	err  error
}

func (f *fakeManualRepo) ListDocs(context.Context) ([]model.ManualDoc, error) {
	return f.docs, f.err
}

func TestManualsApplyLinkHygiene(t *testing.T) {
	svc := NewManualService(&fakeManualRepo{docs: []model.ManualDoc{
		{Category: "คู่มือ Sensor", Link: "https://drive.google.com/folder/abc"},
		{Category: "Datasheet", Link: "drive.google.com/file/def"},
		{Category: "ว่าง", Link: "nan"},
		{Category: "สั้น", Link: "x.co"},
	}})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Docs, 4)

	assert.Equal(t, "https://drive.google.com/folder/abc", resp.Docs[0].Link)
	assert.Equal(t, "https://drive.google.com/file/def", resp.Docs[1].Link)

	// "nan" and too-short values are not links.
	assert.Empty(t, resp.Docs[2].Link)
	assert.Empty(t, resp.Docs[3].Link)
}
