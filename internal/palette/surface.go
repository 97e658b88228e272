package palette

// surfaceEntries are the neutral ramps offered to the user, in display order.
// Every surface carries a pure-white "0" step.
var surfaceEntries = []Entry{
	{Name: "slate", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8fafc",
		"100": "#f1f5f9",
		"200": "#e2e8f0",
		"300": "#cbd5e1",
		"400": "#94a3b8",
		"500": "#64748b",
		"600": "#475569",
		"700": "#334155",
		"800": "#1e293b",
		"900": "#0f172a",
		"950": "#020617",
	}},
	{Name: "gray", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f9fafb",
		"100": "#f3f4f6",
		"200": "#e5e7eb",
		"300": "#d1d5db",
		"400": "#9ca3af",
		"500": "#6b7280",
		"600": "#4b5563",
		"700": "#374151",
		"800": "#1f2937",
		"900": "#111827",
		"950": "#030712",
	}},
	{Name: "zinc", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#fafafa",
		"100": "#f4f4f5",
		"200": "#e4e4e7",
		"300": "#d4d4d8",
		"400": "#a1a1aa",
		"500": "#71717a",
		"600": "#52525b",
		"700": "#3f3f46",
		"800": "#27272a",
		"900": "#18181b",
		"950": "#09090b",
	}},
	{Name: "neutral", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#fafafa",
		"100": "#f5f5f5",
		"200": "#e5e5e5",
		"300": "#d4d4d4",
		"400": "#a3a3a3",
		"500": "#737373",
		"600": "#525252",
		"700": "#404040",
		"800": "#262626",
		"900": "#171717",
		"950": "#0a0a0a",
	}},
	{Name: "stone", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#fafaf9",
		"100": "#f5f5f4",
		"200": "#e7e5e4",
		"300": "#d6d3d1",
		"400": "#a8a29e",
		"500": "#78716c",
		"600": "#57534e",
		"700": "#44403c",
		"800": "#292524",
		"900": "#1c1917",
		"950": "#0c0a09",
	}},
	{Name: "soho", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f4f4f4",
		"100": "#e8e9e9",
		"200": "#d2d2d4",
		"300": "#bbbcbe",
		"400": "#a5a5a9",
		"500": "#8e8f93",
		"600": "#77787d",
		"700": "#616268",
		"800": "#4a4b52",
		"900": "#34343d",
		"950": "#1d1e27",
	}},
	{Name: "viva", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f3f3f3",
		"100": "#e7e7e8",
		"200": "#cfd0d0",
		"300": "#b7b8b9",
		"400": "#9fa1a1",
		"500": "#87898a",
		"600": "#6e7173",
		"700": "#565a5b",
		"800": "#3e4244",
		"900": "#262b2c",
		"950": "#0e1315",
	}},
	{Name: "ocean", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#fbfcfc",
		"100": "#f7f9f8",
		"200": "#eff3f2",
		"300": "#dadedd",
		"400": "#b1b7b6",
		"500": "#828787",
		"600": "#5f7274",
		"700": "#415b61",
		"800": "#29444e",
		"900": "#183240",
		"950": "#0c1920",
	}},
	{Name: "cream", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f7f4",
		"100": "#f0ece4",
		"200": "#e6dfd3",
		"300": "#d9cfbd",
		"400": "#c9bba4",
		"500": "#b5a388",
		"600": "#9f8b70",
		"700": "#857157",
		"800": "#6e5d46",
		"900": "#5a4d3a",
		"950": "#2e261c",
	}},
	{Name: "ivory", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#fcfcf8",
		"100": "#f8f6ed",
		"200": "#f0ead3",
		"300": "#e5dac0",
		"400": "#d6c9a8",
		"500": "#c4b58c",
		"600": "#a99c71",
		"700": "#8c8259",
		"800": "#756c4a",
		"900": "#60583e",
		"950": "#312d20",
	}},
	{Name: "sand", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f7f3",
		"100": "#efede6",
		"200": "#e3decf",
		"300": "#d3ccb6",
		"400": "#c0b69a",
		"500": "#ab9d7d",
		"600": "#948569",
		"700": "#7d6e57",
		"800": "#685c4a",
		"900": "#554d3f",
		"950": "#2b261d",
	}},
	{Name: "taupe", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f6f4",
		"100": "#eeebe6",
		"200": "#ddd6cc",
		"300": "#c9bdb0",
		"400": "#b1a18e",
		"500": "#988371",
		"600": "#806e5a",
		"700": "#6a5b49",
		"800": "#574d3d",
		"900": "#484134",
		"950": "#25221b",
	}},
	{Name: "charcoal", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f6f6f6",
		"100": "#e8e8e8",
		"200": "#d1d1d1",
		"300": "#b0b0b0",
		"400": "#888888",
		"500": "#6b6b6b",
		"600": "#555555",
		"700": "#464646",
		"800": "#3b3b3b",
		"900": "#333333",
		"950": "#1a1a1a",
	}},
	{Name: "smoke", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f9f9fa",
		"100": "#f1f2f3",
		"200": "#e2e4e6",
		"300": "#cdcfd2",
		"400": "#acb0b5",
		"500": "#888d94",
		"600": "#6c7279",
		"700": "#585d64",
		"800": "#4c5056",
		"900": "#41454a",
		"950": "#24262a",
	}},
	{Name: "porcelain", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f8f8",
		"100": "#f0f0f0",
		"200": "#e6e6e6",
		"300": "#d9d9d9",
		"400": "#c8c8c8",
		"500": "#b0b0b0",
		"600": "#9a9a9a",
		"700": "#828282",
		"800": "#6d6d6d",
		"900": "#5a5a5a",
		"950": "#2e2e2e",
	}},
	{Name: "dove", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f5f5f5",
		"100": "#e8e8e8",
		"200": "#dcdcdc",
		"300": "#c8c8c8",
		"400": "#b0b0b0",
		"500": "#959595",
		"600": "#7a7a7a",
		"700": "#636363",
		"800": "#525252",
		"900": "#454545",
		"950": "#242424",
	}},
	{Name: "mist", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f2f4f5",
		"100": "#e5eaed",
		"200": "#d3dce1",
		"300": "#bccbd2",
		"400": "#9eb5bf",
		"500": "#819ca8",
		"600": "#6b828e",
		"700": "#576c77",
		"800": "#4a5a63",
		"900": "#404d55",
		"950": "#212a30",
	}},
	{Name: "fog", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f5f6f7",
		"100": "#eaeced",
		"200": "#dce0e2",
		"300": "#c8cdd1",
		"400": "#b0b6bb",
		"500": "#969ea4",
		"600": "#7d868c",
		"700": "#687178",
		"800": "#575d64",
		"900": "#4a5056",
		"950": "#272b2f",
	}},
	{Name: "alabaster", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#faf9f7",
		"100": "#f3f1ec",
		"200": "#e5e2d8",
		"300": "#d5d0c2",
		"400": "#c1bba5",
		"500": "#aba389",
		"600": "#918b71",
		"700": "#7a7460",
		"800": "#666052",
		"900": "#555048",
		"950": "#2c2823",
	}},
	{Name: "pearl", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f5f7f4",
		"100": "#e8efe8",
		"200": "#d3e2d3",
		"300": "#b6cfba",
		"400": "#93b99b",
		"500": "#739f7c",
		"600": "#5a8362",
		"700": "#4a6b51",
		"800": "#3f5944",
		"900": "#354b39",
		"950": "#1b271d",
	}},
	{Name: "cement", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f8f7",
		"100": "#eeefee",
		"200": "#daddda",
		"300": "#c1c4c1",
		"400": "#a3a8a3",
		"500": "#858b85",
		"600": "#6a6f6a",
		"700": "#565956",
		"800": "#494c49",
		"900": "#3e413e",
		"950": "#222522",
	}},
	{Name: "cloud", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f8f9fa",
		"100": "#f1f3f5",
		"200": "#e9ecef",
		"300": "#dee2e6",
		"400": "#ced4da",
		"500": "#adb5bd",
		"600": "#868e96",
		"700": "#495057",
		"800": "#343a40",
		"900": "#212529",
		"950": "#101214",
	}},
	{Name: "iron", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f4f4f5",
		"100": "#e4e4e7",
		"200": "#d4d4d8",
		"300": "#a1a1aa",
		"400": "#71717a",
		"500": "#52525b",
		"600": "#3f3f46",
		"700": "#27272a",
		"800": "#18181b",
		"900": "#09090b",
		"950": "#000000",
	}},
	{Name: "moonstone", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f6f8fa",
		"100": "#e8eff5",
		"200": "#d2dfe9",
		"300": "#b8c9d8",
		"400": "#95adc3",
		"500": "#758da8",
		"600": "#5c738d",
		"700": "#4b5f73",
		"800": "#415261",
		"900": "#394854",
		"950": "#1e2a36",
	}},
	{Name: "shadow", Palette: Palette{
		"0":   "#ffffff",
		"50":  "#f3f3f3",
		"100": "#d8d8d8",
		"200": "#bdbdbd",
		"300": "#a2a2a2",
		"400": "#888888",
		"500": "#6e6e6e",
		"600": "#595959",
		"700": "#4a4a4a",
		"800": "#3d3d3d",
		"900": "#333333",
		"950": "#1a1a1a",
	}},
}
