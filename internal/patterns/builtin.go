package patterns

// builtinEntries returns the built-in pattern tables. The lists are
// intentionally conservative: they exist to exercise the engine, and callers
// extend them at runtime through Add.
func builtinEntries() []Entry {
	var entries []Entry

	add := func(category Category, severity int, suggestion string, terms ...string) {
		entries = append(entries, Entry{
			Category:   category,
			Terms:      terms,
			Suggestion: suggestion,
			Severity:   severity,
		})
	}

	// Offensive insults. Masked by Sanitize, counted by the offensive detector.
	for _, t := range []string{
		"idiot", "loser", "stupid", "moron", "imbecile", "dimwit",
		"numbskull", "bozo", "clown", "jerk", "scumbag", "dirtbag",
		"pathetic", "worthless", "braindead", "halfwit", "nitwit",
		"blockhead", "airhead", "dunce",
	} {
		add(CategoryOffensive, 3, "", t)
	}
	add(CategoryOffensive, 2, "", "shut up")
	add(CategoryOffensive, 2, "", "nobody likes you")

	// Slang with canonical replacements for Suggest.
	add(CategorySlang, 1, "stupid", "rot-brain", "rotbrain", "brain-rot", "brainrot")
	add(CategorySlang, 1, "charisma", "rizz")
	add(CategorySlang, 1, "throw", "yeet")
	add(CategorySlang, 1, "suspicious", "sus")
	add(CategorySlang, 1, "honestly", "no cap")
	add(CategorySlang, 1, "friends", "fam")
	add(CategorySlang, 1, "friend", "bruh")
	add(CategorySlang, 1, "somewhat", "lowkey")
	add(CategorySlang, 1, "bitter", "salty")
	add(CategorySlang, 1, "excel", "slay")
	add(CategorySlang, 1, "admire", "stan")
	add(CategorySlang, 1, "desperate", "thirsty")
	add(CategorySlang, 1, "reckless", "yolo")
	add(CategorySlang, 1, "style", "drip")
	add(CategorySlang, 1, "unreliable", "janky")
	add(CategorySlang, 1, "stylish", "snatched")

	// Meme vocabulary.
	add(CategoryMeme, 1, "dance", "skibidi")
	add(CategoryMeme, 1, "funny", "lol")
	add(CategoryMeme, 1, "wow", "omg")
	add(CategoryMeme, 1, "be right back", "brb")
	add(CategoryMeme, 1, "conformist", "npc")
	add(CategoryMeme, 1, "dominant", "sigma")
	add(CategoryMeme, 1, "principled", "based")
	add(CategoryMeme, 1, "awkward", "cringe")
	add(CategoryMeme, 1, "mediocre", "mid")
	add(CategoryMeme, 1, "outnumbered", "ratio")

	// Tone and intent markers consumed by the classifier. Terms are stored in
	// folded form (lowercase, no punctuation) to match normalize.Fold output.
	add(CategoryRagebait, 2, "",
		"outrageous", "infuriating", "disgusting", "unacceptable",
		"scandalous", "how dare", "wake up people", "absolutely insane",
		"furious", "enraging")
	add(CategoryClickbait, 1, "",
		"top 10", "you wont believe", "secrets", "revealed", "shocking",
		"amazing", "this one trick", "what happened next", "doctors hate",
		"number 7 will", "gone wrong")
	add(CategorySpamTrigger, 2, "",
		"earn cash", "exclusive deal", "act now", "limited offer",
		"free money", "click here", "no risk", "guaranteed income",
		"winner winner", "double your")
	add(CategoryWoke, 1, "",
		"diversity", "inclusion", "equity", "social justice", "privilege",
		"systemic", "representation", "marginalized")
	add(CategoryBot, 1, "",
		"auto generated", "automated reply", "bot", "beep boop",
		"as a language model", "scripted response")
	add(CategorySarcasm, 1, "",
		"oh great", "just what i needed", "yeah right", "how original",
		"sure thing", "good luck with that", "what a surprise",
		"thanks a lot")
	add(CategoryFormalMarker, 1, "",
		"dear sir", "dear madam", "to whom it may concern", "i am writing to",
		"sincerely", "yours faithfully", "kind regards", "pursuant to",
		"herewith", "aforementioned")
	add(CategoryCasualMarker, 1, "",
		"hey", "yo", "whats up", "gonna", "wanna", "dude", "kinda",
		"sorta", "yall")
	add(CategorySnowflake, 1, "",
		"snowflake", "offended", "triggered", "fragile", "safe space",
		"cancel culture")
	add(CategoryHype, 1, "",
		"ultimate", "revolutionary", "game changing", "breakthrough",
		"next level", "unprecedented", "world class", "mind blowing",
		"once in a lifetime")
	add(CategoryQuality, 1, "",
		"reliable", "methodology", "clearly", "rigorous", "peer reviewed",
		"reproducible", "evidence", "well documented", "strict",
		"consistent", "verified")
	add(CategoryPolitical, 1, "",
		"government", "election", "policy", "policies", "freedom",
		"rights", "overreach", "regulation", "partisan", "ballot",
		"legislation")
	add(CategoryConspiracy, 2, "",
		"hidden truth", "secret societies", "cover up", "deep state",
		"they dont want you to know", "new world order", "false flag",
		"sheeple", "controlled by")
	add(CategoryMarketing, 1, "",
		"sign up", "exclusive", "limited time", "offer", "buy now",
		"discount", "subscribe", "free trial", "dont miss", "best value")
	add(CategoryTechnobabble, 1, "",
		"cloud native", "ai powered", "seamless integration", "next gen",
		"synergy", "paradigm", "leverage", "scalable", "disruptive",
		"innovation", "cutting edge", "hyperconverged")
	add(CategoryExaggeration, 1, "",
		"literally", "never ever", "the worst", "the best ever",
		"millions of", "absolutely", "every single time", "nobody ever",
		"always")

	return entries
}
