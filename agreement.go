package uktag

// identicalCategories may form compounds of two identically tagged parts
// ("один-єдиний", "ген-ген").
var identicalCategories = []Category{
	CatNumeral, CatAdverb, CatAdjective, CatAdjPart, CatExclamation, CatVerb,
}

// tagMatch checks every left reading against every right reading and
// collects the readings the two parts agree on. Readings obtained through
// the animacy fallback are returned only when nothing agrees directly.
func (t *Tagger) tagMatch(c *compound) []AnalyzedToken {
	var agreed, animFallback []AnalyzedToken
	animNote := ""

	for _, l := range c.leftTags {
		lt, leftNv, leftQuals := l.tag.normalized()

		for _, r := range c.rightTags {
			rt, rightNv, _ := r.tag.normalized()

			lemma := l.lemma + "-" + r.lemma
			emit := func(tag Tag) AnalyzedToken {
				tag.NotDeclined = leftNv && rightNv
				tag.Qualifiers = leftQuals
				return AnalyzedToken{Token: c.word, Tag: tag, Lemma: lemma}
			}

			switch {
			case lt.Equal(rt) && lt.Is(identicalCategories...):
				agreed = append(agreed, emit(lt))

			// "сонях-красень", "вчений-біолог"
			case lt.Is(CatNoun) && rt.Is(CatNoun):
				tag, ok := agreedTag(lt, rt, leftNv)
				if !ok && isMinMaxIdiom(c.right, rt) {
					tag, ok = lt, true
				}
				if !ok && lt.Animate != rt.Animate {
					tag, ok = t.tryAnimInanim(lt, rt, l.lemma, r.lemma, leftNv, rightNv)
					if !ok {
						if lt.Animate {
							animNote = "anim-inanim"
						} else {
							animNote = "inanim-anim"
						}
						continue
					}
					animFallback = append(animFallback, emit(tag))
					continue
				}
				if ok {
					agreed = append(agreed, emit(tag))
				}

			// "один-два"
			case lt.Is(CatNumeral) && rt.Is(CatNumeral):
				if tag, ok := numAgreedTag(lt, rt); ok {
					agreed = append(agreed, emit(tag))
				}

			// "сотні-дві"
			case lt.Is(CatNoun) && rt.Is(CatNumeral):
				if sameGenderCase(lt, rt) {
					agreed = append(agreed, emit(lt))
				} else if tag, ok := numAgreedTag(lt, rt); ok {
					agreed = append(agreed, emit(tag))
				}

			// "Буш-молодший", "братів-православних"
			case lt.Is(CatNoun) && rt.Adjectival():
				if sameGenderCase(lt, rt) {
					agreed = append(agreed, emit(lt))
				}
			}
		}
	}

	if len(agreed) == 0 {
		agreed = animFallback
	}
	if len(agreed) == 0 && animNote != "" {
		c.note = animNote
	}
	return agreed
}

// isMinMaxIdiom recognizes "рівень-максимум" where the right noun stays in
// the masculine nominative.
func isMinMaxIdiom(rightWord string, rt Tag) bool {
	if rightWord != "максимум" && rightWord != "мінімум" {
		return false
	}
	return rt.Is(CatNoun) && rt.Gender == GenderMasculine && rt.Case == CaseNominative
}

// agreedTag is the core noun+noun agreement rule: same number, same
// animacy and same case. The left tag wins unless the left part does not
// decline, in which case the right part supplies the case.
func agreedTag(lt, rt Tag, leftNv bool) (Tag, bool) {
	if lt.Plural() != rt.Plural() {
		return Tag{}, false
	}
	if lt.Animate != rt.Animate {
		return Tag{}, false
	}
	if !isStdNoun(lt) || !isStdNoun(rt) {
		return Tag{}, false
	}
	if lt.Case.Code() != rt.Case.Code() {
		return Tag{}, false
	}
	if leftNv {
		return rt, true
	}
	return lt, true
}

// isStdNoun reports whether t is a noun with a full gender:case pair.
func isStdNoun(t Tag) bool {
	return t.Is(CatNoun) && t.HasGenderCase()
}

// numAgreedTag accepts a singular and a plural part in the same case,
// as in "один-два" or "сотні-дві".
func numAgreedTag(lt, rt Tag) (Tag, bool) {
	ln, rn := lt.Number(), rt.Number()
	if ln == "" || rn == "" || ln == rn {
		return Tag{}, false
	}
	if lt.Case != rt.Case {
		return Tag{}, false
	}
	return lt, true
}

// sameGenderCase reports whether both tags carry the same gender:case pair.
func sameGenderCase(a, b Tag) bool {
	ga, ok := a.genderCase()
	if !ok {
		return false
	}
	gb, ok := b.genderCase()
	return ok && ga == gb
}
