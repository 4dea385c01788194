package services

//go:generate mockery --name PasswordHasher --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename PasswordHasher.go

// PasswordHasher produces one-way password hashes; plaintext is never stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}
