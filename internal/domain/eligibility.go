package domain

// Eligibility gate: stateless predicates over an actor and facts derived
// from the store. Callers fetch the facts (inactive marker, admin row,
// existing signup) at the point of mutation and pass them in; the
// predicates themselves never touch storage.

// AuthorizeSignUp decides whether the actor may sign up to present for a
// week with the given derived state. The returned sentinel identifies the
// first failing condition; nil means allowed.
func AuthorizeSignUp(actor Actor, weekInactive, alreadySignedUp bool) error {
	if !actor.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if actor.IsAnonymous || actor.Email == "" {
		return ErrForbidden
	}
	if weekInactive {
		return ErrWeekInactive
	}
	if alreadySignedUp {
		return ErrDuplicateSignup
	}
	return nil
}

// AuthorizePresentationChange decides whether the actor may edit or delete
// a presentation owned by presenterEmail. Owners lose their rights on an
// inactive week; admins keep them.
func AuthorizePresentationChange(actor Actor, presenterEmail string, weekInactive, isAdmin bool) error {
	if !actor.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if actor.IsAnonymous {
		return ErrForbidden
	}
	if weekInactive && !isAdmin {
		return ErrWeekInactive
	}
	if !isAdmin && presenterEmail != actor.Email {
		return ErrForbidden
	}
	return nil
}

// AuthorizeAdminAction gates recording management, inactive-week toggles,
// and roster changes on the derived admin flag.
func AuthorizeAdminAction(actor Actor, isAdmin bool) error {
	if !actor.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if actor.IsAnonymous || actor.Email == "" || !isAdmin {
		return ErrForbidden
	}
	return nil
}

// AuthorizeAdminRemoval additionally forbids an admin removing their own
// record. Both emails are expected in canonical (lowercased) form.
func AuthorizeAdminRemoval(actor Actor, targetEmail string, isAdmin bool) error {
	if err := AuthorizeAdminAction(actor, isAdmin); err != nil {
		return err
	}
	if targetEmail == CanonicalEmail(actor.Email) {
		return ErrSelfRemoval
	}
	return nil
}
