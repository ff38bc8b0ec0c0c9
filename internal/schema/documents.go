package schema

// The per-kind structural contracts. Schemas are permissive: unknown keys are
// accepted unless a document or field sets Closed.

var asimovDocument = Document{
	Kind:        KindAsimov,
	Title:       "Asimov Protocol",
	Description: "Ethical framework: harm prevention, human veto, bounded autonomy",
	Fields: []Field{
		modificationRules(),
		{
			Name:        "first_law",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Do no harm",
			Children: []Field{
				enum("status", "Whether the law is enforced", "REQUIRED", "OPTIONAL"),
				str("description", "Summary of the first law"),
				object("do_no_harm", "Categories of blocked harm",
					harmRule("financial", "No unauthorized money movement"),
					harmRule("physical", "No physical harm"),
					harmRule("privacy", "No credential or PII harvesting"),
					harmRule("deception", "No deepfakes or misinformation"),
				),
				{
					Name:        "red_flags",
					Type:        FieldTypeObject,
					Description: "Patterns that trigger a pause",
					Values:      &Field{Type: FieldTypeArray, AltTypes: []FieldType{FieldTypeString}},
				},
			},
		},
		{
			Name:        "second_law",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Obey humans unless that conflicts with the first law",
			Children: []Field{
				enum("status", "Whether the law is enforced", "REQUIRED", "OPTIONAL"),
				str("description", "Summary of the second law"),
				{
					Name:        "human_veto",
					Type:        FieldTypeObject,
					Required:    true,
					Description: "Human override capability",
					Children: []Field{
						str("description", "What a veto does"),
						{Name: "commands", Type: FieldTypeArray, MinItems: 1, Items: &Field{Type: FieldTypeString}, Description: "Words that halt the agent"},
						strList("on_veto", "Steps taken on veto"),
					},
				},
				object("transparency_over_velocity", "Pause when unsure",
					boolean("enabled", "Whether the rule is active"),
					str("description", "What the rule enforces"),
					strList("when_to_pause", "Situations that require asking"),
				),
				object("first_law_override", "Refuse harmful instructions",
					str("description", "What the override does"),
					strList("examples", "Instructions that are refused"),
					str("response", "How to refuse"),
				),
			},
		},
		object("third_law", "Self-preservation within bounds",
			enum("status", "Whether the law is enforced", "REQUIRED", "OPTIONAL"),
			str("description", "Summary of the third law"),
			object("bounded_sessions", "Session time limits",
				Field{Name: "max_hours", Type: FieldTypeInt, Minimum: bound(1), Maximum: bound(8), Description: "Maximum session length"},
				str("checkpoint_frequency", "How often to checkpoint"),
				str("reason", "Why sessions are bounded"),
			),
			object("self_healing", "Recovery after context loss",
				str("description", "What self-healing does"),
				strList("on_confusion", "Steps taken when confused"),
				str("checkpoint_file", "Where checkpoints are written"),
			),
		),
		object("zeroth_law", "Protect humanity as a whole",
			str("description", "Summary of the zeroth law"),
			strList("applies_to", "Decisions the zeroth law covers"),
		),
		str("motto", "One-line summary"),
	},
}

func harmRule(name, desc string) Field {
	return object(name, desc,
		boolean("enabled", "Whether the category is blocked"),
		str("description", "What the category covers"),
		strList("examples_blocked", "Examples of blocked requests"),
	)
}

var freshnessDocument = Document{
	Kind:        KindFreshness,
	Title:       "Freshness Protocol",
	Description: "Date-aware search rules for stale model knowledge",
	Fields: []Field{
		modificationRules(),
		object("core_principle", "Why freshness matters",
			str("status", "Whether the principle is enforced"),
			str("insight", "Key observation"),
			str("user_perception", "How stale answers look to users"),
		),
		openObject("model_cutoffs", "Known training cutoffs"),
		object("always_search", "Topics that always require a search",
			str("description", "When to search"),
			strList("temporal_keywords", "Words that imply recency"),
			strList("volatile_topics", "Topics that change quickly"),
		),
		object("volatile_domains", "Domains grouped by volatility",
			str("description", "How domains are grouped"),
			strList("high_volatility", "Changes weekly"),
			strList("medium_volatility", "Changes monthly"),
			strList("low_volatility", "Changes yearly"),
		),
		object("behavior", "What to do with and without search",
			object("when_search_available", "Search tool present",
				str("action", "What to do"),
				str("priority", "How urgent"),
				str("rationale", "Why"),
			),
			object("when_search_unavailable", "Search tool absent",
				str("action", "What to do"),
				str("template", "Disclaimer text"),
			),
			strList("decision_tree", "Ordered decision steps"),
		),
		object("validation", "How compliance is checked",
			str("cli_command", "Command that validates the protocol"),
			strList("checks", "Checks performed"),
		),
		str("motto", "One-line summary"),
	},
}

var sycophancyDocument = Document{
	Kind:        KindSycophancy,
	Title:       "Anti-Sycophancy Protocol",
	Description: "Truth over comfort, disagreement over validation",
	Fields: []Field{
		modificationRules(),
		object("core_principles", "Principles that override the urge to please",
			str("status", "Whether the principles are enforced"),
			toggle("truth_over_comfort", "Prefer accuracy to reassurance"),
			toggle("respectful_disagreement", "Disagree when warranted"),
			toggle("no_empty_validation", "No praise without substance"),
			toggle("constructive_criticism", "Point out problems"),
			toggle("intellectual_honesty", "Admit uncertainty"),
		),
		{
			Name:        "banned_phrases",
			Type:        FieldTypeObject,
			Description: "Phrases that signal sycophancy",
			Children:    []Field{str("description", "Why these are banned")},
			Values:      &Field{Type: FieldTypeArray, AltTypes: []FieldType{FieldTypeString}},
		},
		object("directives", "Behavioral directives",
			str("description", "What the directives cover"),
			Field{
				Name: "principles",
				Type: FieldTypeArray,
				Items: &Field{
					Type: FieldTypeObject,
					Children: []Field{
						reqStr("directive", "The directive"),
						str("example", "Example of the directive applied"),
					},
				},
				Description: "Directive list",
			},
		),
		openObject("anti_patterns", "Sycophantic behaviors to avoid"),
		object("on_pressure", "Behavior under user pushback",
			str("description", "What pressure looks like"),
			strList("steps", "What to do"),
			strList("never", "What never to do"),
		),
		str("motto", "One-line summary"),
	},
}

var greenDocument = Document{
	Kind:        KindGreen,
	Title:       "Green Coding Protocol",
	Description: "Local-first tools, efficient binaries, carbon awareness",
	Fields: []Field{
		modificationRules(),
		object("core_principles", "Sustainability principles",
			str("status", "Whether the principles are enforced"),
			toggle("local_first", "Use local tools over cloud calls"),
			toggle("token_efficiency", "Spend tokens on reasoning"),
			toggle("binary_efficiency", "Ship small binaries"),
			toggle("carbon_awareness", "Track energy cost"),
		),
		openObject("practices", "Per-language practices"),
		openObject("anti_patterns", "Wasteful patterns to avoid"),
		openObject("metrics", "How efficiency is measured"),
		openObject("validation", "How compliance is checked"),
		str("motto", "One-line summary"),
	},
}

var sprintDocument = Document{
	Kind:        KindSprint,
	Title:       "Sprint Protocol",
	Description: "Session boundaries and shipping discipline",
	Fields: []Field{
		{
			Name:        "rules",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Sprint rules",
			Children: []Field{
				{Name: "max_milestones", Type: FieldTypeInt, AltTypes: []FieldType{FieldTypeString}, Description: "Milestones per session"},
				{Name: "must_ship", Type: FieldTypeBool, Required: true, Description: "Every session ends with a release"},
				str("mantra", "Sprint mantra"),
			},
		},
		openObject("phases", "Session phases"),
		{
			Name:        "anti_patterns",
			Type:        FieldTypeObject,
			Description: "Behaviors to avoid, with the correction",
			Values:      &Field{Type: FieldTypeString},
		},
		object("authority", "What the agent may decide alone",
			str("principle", "Governing principle"),
			strList("can_release_when", "Release conditions"),
			strList("stop_when", "Stop conditions"),
			strList("never_stop_for", "Things that never justify stopping"),
			strList("ask_human_only", "Decisions reserved for humans"),
		),
	},
}

var warmupDocument = Document{
	Kind:        KindWarmup,
	Title:       "Warmup Protocol",
	Description: "Session bootstrap: identity, files and quality gates",
	Fields: []Field{
		{
			Name:        "identity",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Project identity",
			Children: []Field{
				reqStr("name", "Project name"),
				str("tagline", "One-line description"),
				{Name: "version", Type: FieldTypeString, AltTypes: []FieldType{FieldTypeNumber, FieldTypeInt}, Description: "Current version"},
				str("philosophy", "Guiding idea"),
			},
		},
		object("mission", "What the project solves",
			str("problem", "The problem"),
			str("solution", "The solution"),
			strList("principles", "Design principles"),
		),
		{
			Name:        "protocol",
			Type:        FieldTypeObject,
			Description: "Where the protocol files live",
			Values:      &Field{Type: FieldTypeString, AltTypes: []FieldType{FieldTypeObject}},
		},
		{
			Name:        "files",
			Type:        FieldTypeObject,
			Description: "Key files grouped by purpose",
			Values:      &Field{Type: FieldTypeArray, Items: &Field{Type: FieldTypeString}},
		},
		object("session", "Session lifecycle",
			strList("start", "Steps at session start"),
			strList("during", "Rules during the session"),
			strList("end", "Steps at session end"),
		),
		{
			Name:        "quality",
			Type:        FieldTypeObject,
			Description: "Quality gate commands",
			Values:      &Field{Type: FieldTypeString},
		},
		{
			Name:        "style",
			Type:        FieldTypeObject,
			Description: "Code style rules",
			Values:      &Field{Type: FieldTypeArray, AltTypes: []FieldType{FieldTypeString}},
		},
	},
}

var migrationsDocument = Document{
	Kind:        KindMigrations,
	Title:       "Migrations Protocol",
	Description: "Functional equivalence rules for language migrations",
	Fields: []Field{
		modificationRules(),
		{
			Name:        "migration",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Migration identity",
			Children: []Field{
				reqStr("name", "Migration name"),
				str("description", "What is being migrated"),
				endpoint("source", "Code being migrated from"),
				endpoint("target", "Code being migrated to"),
			},
		},
		{
			Name:        "equivalence",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "How equivalence is proven",
			Children: []Field{
				str("principle", "Equivalence principle"),
				{
					Name:        "strategies",
					Type:        FieldTypeObject,
					Required:    true,
					Description: "Equivalence strategies",
					Children: []Field{
						object("test_parity", "Run the same tests on both sides",
							boolean("enabled", "Whether the strategy is used"),
							str("description", "What the strategy does"),
							str("source_command", "Test command for the source"),
							str("target_command", "Test command for the target"),
							str("requirement", "Pass condition"),
						),
						object("contract_testing", "Shared API contracts",
							boolean("enabled", "Whether the strategy is used"),
							str("description", "What the strategy does"),
							str("contracts_path", "Where contracts live"),
							enum("format", "Contract format", "yaml", "json", "openapi", "protobuf"),
						),
						object("behavioral_snapshots", "Recorded input/output pairs",
							boolean("enabled", "Whether the strategy is used"),
							str("description", "What the strategy does"),
							str("snapshots_path", "Where snapshots live"),
							enum("tolerance", "Comparison tolerance", "exact", "numeric_tolerance", "semantic"),
						),
						object("shadow_mode", "Run both in production and compare",
							boolean("enabled", "Whether the strategy is used"),
							str("description", "What the strategy does"),
							str("comparator", "Comparison method"),
						),
					},
				},
			},
		},
		object("quality_gates", "Gates at each migration stage",
			strList("before_migration", "Before starting"),
			strList("during_migration", "While migrating"),
			strList("after_migration", "Before cutover"),
		),
		str("motto", "One-line summary"),
	},
}

func endpoint(name, desc string) Field {
	return Field{
		Name:        name,
		Type:        FieldTypeObject,
		Required:    true,
		Description: desc,
		Children: []Field{
			reqStr("language", "Programming language"),
			reqStr("path", "Code location"),
			strList("entry_points", "Main entry points"),
		},
	}
}

var projectDocument = Document{
	Kind:        KindProject,
	Title:       "Project Configuration",
	Description: "Project identity, quality commands and key files",
	Fields: []Field{
		{
			Name:        "identity",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Project identity",
			Children: []Field{
				reqStr("name", "Project name"),
				{
					Name:        "type",
					Type:        FieldTypeString,
					Required:    true,
					Enum:        []string{"rust", "python", "node", "go", "flutter", "docs", "generic", "migration"},
					Description: "Project type",
				},
				{Name: "version", Type: FieldTypeString, AltTypes: []FieldType{FieldTypeNumber, FieldTypeInt}, Description: "Current version"},
				str("tagline", "One-line description"),
			},
		},
		{
			Name:        "quality",
			Type:        FieldTypeObject,
			Description: "Quality gate commands",
			Values:      &Field{Type: FieldTypeString},
		},
		{
			Name:        "files",
			Type:        FieldTypeObject,
			Description: "Key files grouped by purpose",
			Values:      &Field{Type: FieldTypeArray, Items: &Field{Type: FieldTypeString}},
		},
		strList("patterns", "Project conventions"),
		openObject("release", "Release settings"),
		openObject("environment", "Toolchain settings"),
	},
}

var roadmapDocument = Document{
	Kind:        KindRoadmap,
	Title:       "Roadmap",
	Description: "Current milestone, upcoming milestones and backlog",
	Fields: []Field{
		{
			Name:        "current",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "The milestone in progress",
			Children: []Field{
				milestoneVersion(),
				{
					Name:        "status",
					Type:        FieldTypeString,
					Required:    true,
					Enum:        []string{"planned", "in_progress", "blocked", "done"},
					Description: "Milestone status",
				},
				str("summary", "What the milestone delivers"),
				str("goal", "Success criterion"),
				str("adr", "Related decision record"),
				strList("deliverables", "Concrete outputs"),
			},
		},
		{
			Name:     "next",
			Type:     FieldTypeArray,
			MaxItems: 5,
			Items: &Field{
				Type: FieldTypeObject,
				Children: []Field{
					milestoneVersion(),
					reqStr("summary", "What the milestone delivers"),
					str("goal", "Success criterion"),
					enum("status", "Milestone status", "planned", "in_progress", "blocked", "done"),
				},
			},
			Description: "Upcoming milestones",
		},
		strList("backlog", "Unscheduled ideas"),
	},
}

func milestoneVersion() Field {
	return Field{
		Name:        "version",
		Type:        FieldTypeString,
		AltTypes:    []FieldType{FieldTypeNumber, FieldTypeInt},
		Required:    true,
		Description: "Milestone version",
	}
}

var documents = map[Kind]*Document{
	KindAsimov:     &asimovDocument,
	KindFreshness:  &freshnessDocument,
	KindSycophancy: &sycophancyDocument,
	KindGreen:      &greenDocument,
	KindSprint:     &sprintDocument,
	KindWarmup:     &warmupDocument,
	KindMigrations: &migrationsDocument,
	KindProject:    &projectDocument,
	KindRoadmap:    &roadmapDocument,
}

// Get returns the schema document for a kind, or nil for unknown kinds.
func Get(kind Kind) *Document {
	return documents[kind]
}
