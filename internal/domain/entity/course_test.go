package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCourse_CompletionText(t *testing.T) {
	course := &Course{}
	assert.Equal(t, "(0/5)", course.CompletionText())
	assert.False(t, course.RequiredFieldsComplete())

	course.Title = "Go from scratch"
	course.Description = "A course"
	assert.Equal(t, "(2/5)", course.CompletionText())

	course.ImageURL = "https://cdn.example.com/cover.png"
	course.Price = int64Ptr(4900)
	assert.Equal(t, "(4/5)", course.CompletionText())
	assert.False(t, course.RequiredFieldsComplete())

	course.Chapters = []*Chapter{{Title: "Intro", IsPublished: true}}
	assert.Equal(t, "(5/5)", course.CompletionText())
	assert.True(t, course.RequiredFieldsComplete())
}

func TestCourse_FreePriceCountsAsSet(t *testing.T) {
	course := &Course{
		Title:       "Free course",
		Description: "d",
		ImageURL:    "i",
		Price:       int64Ptr(0),
		Chapters:    []*Chapter{{IsPublished: true}},
	}

	// A price of zero is still a price; only a nil price blocks publishing.
	assert.True(t, course.RequiredFieldsComplete())
}

func TestCourse_PublishedChapterCount(t *testing.T) {
	course := &Course{
		Chapters: []*Chapter{
			{IsPublished: true},
			{IsPublished: false},
			{IsPublished: true},
		},
	}

	assert.Equal(t, 2, course.PublishedChapterCount())
}

func TestChapter_CompletionText(t *testing.T) {
	chapter := &Chapter{}
	assert.Equal(t, "(0/2)", chapter.CompletionText())
	assert.False(t, chapter.RequiredFieldsComplete())

	chapter.Title = "Intro"
	assert.Equal(t, "(1/2)", chapter.CompletionText())

	// An uploaded video is not enough; the processing webhook must have
	// assigned an asset ID.
	chapter.VideoKey = "courses/x/chapters/y"
	assert.Equal(t, "(1/2)", chapter.CompletionText())

	chapter.VideoAssetID = "asset-123"
	assert.Equal(t, "(2/2)", chapter.CompletionText())
	assert.True(t, chapter.RequiredFieldsComplete())
}
