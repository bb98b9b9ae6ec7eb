// Package service contains the application use cases: managing reading texts
// and records, uploading and deleting audio recordings, evaluating them, and
// account sign-up and sign-in.
//
// Services validate input and check ownership before calling any
// collaborator. Stores, object storage and the authentication provider are
// injected as interfaces, so the package never depends on a concrete
// database or storage backend.
//
// Errors:
//   - validation failures match domain.ErrValidation
//   - missing entities match domain.ErrNotFound and the service-level
//     ErrXxxNotFound sentinels
//   - ownership failures match ErrNotOwned and domain.ErrPermissionDenied
//   - unexpected collaborator failures are wrapped in *ServiceError
package service
