package vectorspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

func TestFitEmptyCorpus(t *testing.T) {
	_, _, err := Fit(nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestFitStopWordOnlyCorpus(t *testing.T) {
	_, _, err := Fit([]string{"the and of", "to be or not to be"}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestFitBuildsUnigramsAndBigrams(t *testing.T) {
	model, matrix, err := Fit([]string{"sort numbers quickly"}, 0)
	require.NoError(t, err)
	require.Len(t, matrix, 1)

	_, hasUnigram := model.Vocabulary["sort"]
	assert.True(t, hasUnigram, "unigram missing from vocabulary")

	_, hasBigram := model.Vocabulary["sort numbers"]
	assert.True(t, hasBigram, "bigram missing from vocabulary")
}

func TestFitExcludesStopWords(t *testing.T) {
	model, _, err := Fit([]string{"how to sort the numbers"}, 0)
	require.NoError(t, err)

	for term := range model.Vocabulary {
		assert.NotEqual(t, "how", term)
		assert.NotEqual(t, "to", term)
		assert.NotEqual(t, "the", term)
	}

	// Bigrams are formed over the stop-word-filtered sequence.
	_, ok := model.Vocabulary["sort numbers"]
	assert.True(t, ok, "expected bigram across removed stop word")
}

func TestFitCapsVocabulary(t *testing.T) {
	// 30 distinct terms across the corpus, capped at 10.
	corpus := make([]string, 10)
	for i := range corpus {
		corpus[i] = fmt.Sprintf("alpha%02d beta%02d gamma%02d", i, i, i)
	}

	model, matrix, err := Fit(corpus, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, model.Dimensions())
	assert.Len(t, matrix, len(corpus))
	assert.Len(t, model.IDF, 10)
}

func TestFitIsDeterministic(t *testing.T) {
	corpus := []string{
		"sorting a list of numbers",
		"homemade pizza dough recipe",
		"sorting strings and numbers fast",
	}

	m1, rows1, err := Fit(corpus, 0)
	require.NoError(t, err)
	m2, rows2, err := Fit(corpus, 0)
	require.NoError(t, err)

	assert.Equal(t, m1.Vocabulary, m2.Vocabulary)
	assert.Equal(t, m1.IDF, m2.IDF)
	assert.Equal(t, rows1, rows2)
}

func TestFitRowsAreNormalised(t *testing.T) {
	_, matrix, err := Fit([]string{
		"sorting numbers in ascending order",
		"pizza dough needs time",
	}, 0)
	require.NoError(t, err)

	for i, row := range matrix {
		assert.InDelta(t, 1.0, row.Norm(), 1e-9, "row %d not unit length", i)
		for _, w := range row.Values {
			assert.GreaterOrEqual(t, w, 0.0)
		}
	}
}

func TestTransformUnseenTermsIgnored(t *testing.T) {
	model, _, err := Fit([]string{"sorting numbers quickly"}, 0)
	require.NoError(t, err)

	v, err := model.Transform("quantum chromodynamics")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = model.Transform("sorting quantum stuff")
	require.NoError(t, err)
	assert.False(t, v.IsZero())
	assert.InDelta(t, 1.0, v.Norm(), 1e-9)
}

func TestTransformBeforeFit(t *testing.T) {
	var m *Model
	_, err := m.Transform("anything")
	assert.ErrorIs(t, err, domain.ErrNotFitted)

	_, err = (&Model{}).Transform("anything")
	assert.ErrorIs(t, err, domain.ErrNotFitted)
}

func TestTransformMatchesFitRow(t *testing.T) {
	corpus := []string{
		"sorting numbers in ascending order",
		"baking sourdough bread at home",
	}
	model, matrix, err := Fit(corpus, 0)
	require.NoError(t, err)

	// Transforming a corpus text must reproduce its fitted row.
	v, err := model.Transform(corpus[0])
	require.NoError(t, err)
	assert.Equal(t, matrix[0].Indices, v.Indices)
	require.Len(t, v.Values, len(matrix[0].Values))
	for i := range v.Values {
		assert.InDelta(t, matrix[0].Values[i], v.Values[i], 1e-12)
	}
}
