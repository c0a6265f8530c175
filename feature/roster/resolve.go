package roster

// IsReference reports whether token is a record id rather than a name.
func IsReference(token string) bool {
	return referencePattern.MatchString(token)
}

// Resolve maps a single token to a user id. Reference tokens are looked up by
// record id, everything else by canonical name.
func (ix *Index) Resolve(token string) (string, bool) {
	if IsReference(token) {
		userID, ok := ix.ByRecordID[token]
		return userID, ok
	}

	name := NormalizeName(token)
	if name == "" {
		return "", false
	}
	userID, ok := ix.ByName[name]
	return userID, ok
}

// ResolveTokens resolves tokens in order, dropping duplicates after their first
// occurrence. Tokens without a match are returned separately.
func (ix *Index) ResolveTokens(tokens []string) (members []string, unresolved []string) {
	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		userID, ok := ix.Resolve(token)
		if !ok {
			unresolved = append(unresolved, token)
			continue
		}
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		members = append(members, userID)
	}

	return members, unresolved
}

// ResolveMembership computes the resolved membership of a raw coordinators field.
func (ix *Index) ResolveMembership(raw any) []string {
	members, _ := ix.ResolveTokens(ExplodeTokens(raw))
	return members
}
