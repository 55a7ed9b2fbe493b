package uktag

// tryAnimInanim resolves noun+noun pairs that differ only in animacy,
// using the master and slave word lists. The branches are checked in
// order and the first applicable one decides.
func (t *Tagger) tryAnimInanim(lt, rt Tag, leftLemma, rightLemma string, leftNv, rightNv bool) (Tag, bool) {
	noNv := !leftNv && !rightNv

	switch {
	// "підприємство-банкрут": the left noun imposes its animacy.
	case t.lex.IsLeftMaster(leftLemma):
		rt = rt.WithAnimate(lt.Animate)
		if tag, ok := agreedTag(lt, rt, leftNv); ok {
			return tag, true
		}
		if !noNv || !mnpCase(lt, CaseAccusative) {
			return Tag{}, false
		}
		if !lt.Animate && mnpCase(rt, CaseNominative) {
			return lt, true
		}
		if lt.Animate && mnpCase(rt, CaseGenitive) {
			return lt, true
		}

	// "сонях-красень": the right noun yields.
	case t.lex.IsSlave(rightLemma):
		rt = rt.WithAnimate(false)
		if tag, ok := agreedTag(lt, rt, false); ok {
			return tag, true
		}
		if !lt.Animate && noNv &&
			mnpCase(lt, CaseAccusative) && mnpCase(rt, CaseNominative) &&
			lt.Number() == rt.Number() {
			return lt, true
		}

	// "красень-сонях": the left noun yields and the right one leads.
	case t.lex.IsSlave(leftLemma):
		lt = lt.WithAnimate(false)
		if tag, ok := agreedTag(rt, lt, false); ok {
			return tag, true
		}
		if !rt.Animate && noNv &&
			mnpCase(rt, CaseAccusative) && mnpCase(lt, CaseNominative) &&
			lt.Number() == rt.Number() {
			return rt, true
		}
	}

	// "рослин-людожерів", "депутатів-привидів" stay untagged.
	return Tag{}, false
}

// mnpCase reports whether t is masculine, neuter or plural in case c.
func mnpCase(t Tag, c Case) bool {
	switch t.Gender {
	case GenderMasculine, GenderNeuter, GenderPlural:
		return t.Case == c
	}
	return false
}
