// Package media classifies file paths into broad media kinds based on
// their extension. Classification is pure and total: every path maps to
// image, video, or none, and the recognized extension sets are fixed.
package media
