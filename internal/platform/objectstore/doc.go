// Package objectstore provides the object storage backends used for audio
// recordings: a local directory for development and Google Cloud Storage
// for deployments.
package objectstore
