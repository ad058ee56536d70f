// Package asset loads the background photos shown behind card artwork.
//
// Photos are referenced by URL. http and https URLs are fetched, file URLs
// and bare paths are read from disk. PNG, JPEG, GIF and WebP are decoded;
// oversized photos are scaled down to a configurable bound. Loads are never
// retried: a failed photo simply stays blank.
package asset
