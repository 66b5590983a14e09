package strutil

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var namespaceAliases = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

// Namespace resolves a UUID namespace. Accepts the aliases dns, url, oid and
// x500 or any UUID string. An empty value resolves to the DNS namespace.
func Namespace(value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.NameSpaceDNS, nil
	}
	if ns, ok := namespaceAliases[strings.ToLower(value)]; ok {
		return ns, nil
	}

	ns, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidNamespace, value, err)
	}
	return ns, nil
}

// UUID5 returns the version 5 (SHA-1, name based) UUID for name within
// namespace, see Namespace for accepted namespace values.
func UUID5(name, namespace string) (string, error) {
	ns, err := Namespace(namespace)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(ns, []byte(name)).String(), nil
}

// MustUUID5 is like UUID5 but panics on an invalid namespace.
func MustUUID5(name, namespace string) string {
	id, err := UUID5(name, namespace)
	if err != nil {
		panic(err)
	}
	return id
}
