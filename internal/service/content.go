package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/openlearnhq/curriculum/internal/compress"
	"github.com/openlearnhq/curriculum/internal/content"
)

// UpdateCourseContent stores a serialized document tree for a course. The
// raw payload is kept byte-for-byte (behind the configured codec), so a
// later read returns exactly what the editor produced.
func (s *CurriculumService) UpdateCourseContent(ctx context.Context, courseID string, raw string) error {
	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return orNotFound(err, ErrCourseNotFound)
	}

	encoded, err := s.codec.Encode([]byte(raw))
	if err != nil {
		return err
	}

	course.Content = string(encoded)
	course.Compression = s.codec.Name()
	if err := s.store.UpdateCourse(ctx, course); err != nil {
		return err
	}

	if cacheErr := s.thumbnails.DeleteThumbnail(ctx, courseID); cacheErr != nil {
		logrus.Warnf("dropping cached thumbnail for course %s: %v", courseID, cacheErr)
	}
	return nil
}

// CourseContent returns the stored document tree of a course, decoded back
// to the exact serialized form the caller stored.
func (s *CurriculumService) CourseContent(ctx context.Context, courseID string) (string, error) {
	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return "", orNotFound(err, ErrCourseNotFound)
	}
	if course.Content == "" {
		return "", nil
	}

	decoded, err := compress.New(course.Compression).Decode([]byte(course.Content))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// CourseThumbnail returns the thumbnail URL of the first embedded video in
// a course's content, or an empty string when there is none. Unparseable
// content degrades to no thumbnail, it never fails the read.
func (s *CurriculumService) CourseThumbnail(ctx context.Context, courseID string) (string, error) {
	if url, err := s.thumbnails.GetThumbnail(ctx, courseID); err == nil {
		return url, nil
	}

	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return "", orNotFound(err, ErrCourseNotFound)
	}

	url := ""
	if course.Content != "" {
		if decoded, err := compress.New(course.Compression).Decode([]byte(course.Content)); err == nil {
			url, _ = s.extractor.FirstThumbnailJSON(string(decoded))
		}
	}

	if cacheErr := s.thumbnails.SetThumbnail(ctx, courseID, url); cacheErr != nil {
		logrus.Warnf("caching thumbnail for course %s: %v", courseID, cacheErr)
	}
	return url, nil
}

// CourseMediaReferences extracts every embedded video reference from a
// course's content in traversal order.
func (s *CurriculumService) CourseMediaReferences(ctx context.Context, courseID string) ([]content.MediaReference, error) {
	raw, err := s.CourseContent(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	node, err := content.Parse(raw)
	if err != nil {
		return nil, nil
	}
	return s.extractor.All(node), nil
}
