// Package secrets provides the secret store backends used to resolve
// IN_VAULT env placeholders: a HashiCorp Vault client for normal
// operation and a SOPS-encrypted local file for offline use.
//
// Keys are logical paths of the form {region}/{service}/{ENV_VAR}.
package secrets

import "errors"

// ErrSecretNotFound indicates a lookup key has no value in the store.
var ErrSecretNotFound = errors.New("secret not found")
