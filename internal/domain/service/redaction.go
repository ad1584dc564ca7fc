package service

import (
	"strings"

	"vialidades/internal/domain/entity"
)

const (
	uploadSegment   = "/upload/"
	redactionMarker = "/e_blur_faces/"
	redactedSegment = "/upload/e_blur_faces/"
)

// RedactImageURL inserts the face-blur transformation right after the
// upload path segment. URLs already carrying the marker, or not served
// through the upload pipeline, are returned unchanged, so the rewrite is
// idempotent.
func RedactImageURL(url string) string {
	if !strings.Contains(url, uploadSegment) || strings.Contains(url, redactionMarker) {
		return url
	}
	return strings.Replace(url, uploadSegment, redactedSegment, 1)
}

// RedactReportMedia applies the face-blur rewrite to every image media
// item of the report, including the legacy photos list. Videos are left
// untouched.
func RedactReportMedia(report *entity.Report) {
	for i := range report.Media {
		if report.Media[i].Kind == entity.MediaKindImage {
			report.Media[i].URL = RedactImageURL(report.Media[i].URL)
		}
	}
	for i := range report.Photos {
		if report.Photos[i].Kind == entity.MediaKindImage {
			report.Photos[i].URL = RedactImageURL(report.Photos[i].URL)
		}
	}
}
