package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/services"
	"github.com/bionicotaku/lingo-services-media/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReferences_EmptyInputSkipsLookup(t *testing.T) {
	t.Parallel()

	calls := 0
	lookup := func(context.Context, []string) ([]string, error) {
		calls++
		return nil, nil
	}

	for _, ids := range [][]string{nil, {}, {" ", ""}} {
		n, err := services.ValidateReferences(context.Background(), services.LabelCategories, ids, lookup)
		require.NoError(t, err)
		assert.False(t, n.HasErrors())
	}
	assert.Zero(t, calls)
}

func TestValidateReferences_ReportsEachMissingIDOnce(t *testing.T) {
	t.Parallel()

	var requested []string
	lookup := func(_ context.Context, ids []string) ([]string, error) {
		requested = ids
		return []string{"G2"}, nil
	}

	n, err := services.ValidateReferences(context.Background(), services.LabelGenres, []string{"G3", "G1", "G2", "G3", "G1"}, lookup)
	require.NoError(t, err)

	assert.Equal(t, []string{"G1", "G2", "G3"}, requested, "查询前去重")
	require.Len(t, n.Errors(), 1)
	assert.Equal(t, "Some genres could not be found: G1, G3", n.Errors()[0].Message)
}

func TestValidateReferences_AllFound(t *testing.T) {
	t.Parallel()

	lookup := func(_ context.Context, ids []string) ([]string, error) { return ids, nil }
	n, err := services.ValidateReferences(context.Background(), services.LabelCastMembers, []string{"M1"}, lookup)
	require.NoError(t, err)
	assert.False(t, n.HasErrors())
}

func TestValidateReferences_LookupFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	lookup := func(context.Context, []string) ([]string, error) { return nil, boom }
	n, err := services.ValidateReferences(context.Background(), services.LabelCategories, []string{"C1"}, lookup)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, n)
}

func TestReferenceValidator_MergesAllKinds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categories := mocks.NewMockReferenceGateway(ctrl)
	genres := mocks.NewMockReferenceGateway(ctrl)
	castMembers := mocks.NewMockReferenceGateway(ctrl)

	categories.EXPECT().ExistsByIDs(gomock.Any(), []string{"C1", "C2"}).Return([]string{"C1"}, nil)
	genres.EXPECT().ExistsByIDs(gomock.Any(), []string{"G1"}).Return([]string{"G1"}, nil)
	castMembers.EXPECT().ExistsByIDs(gomock.Any(), []string{"M1"}).Return(nil, nil)

	validator := services.NewReferenceValidator(categories, genres, castMembers)
	n, err := validator.Validate(context.Background(), []string{"C2", "C1"}, []string{"G1"}, []string{"M1"})
	require.NoError(t, err)

	var msgs []string
	for _, e := range n.Errors() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{
		"Some categories could not be found: C2",
		"Some cast members could not be found: M1",
	}, msgs)
}
