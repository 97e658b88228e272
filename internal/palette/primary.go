package palette

// primaryEntries are the accent ramps offered to the user, in display order.
var primaryEntries = []Entry{
	{Name: "emerald", Palette: Palette{
		"50":  "#ecfdf5",
		"100": "#d1fae5",
		"200": "#a7f3d0",
		"300": "#6ee7b7",
		"400": "#34d399",
		"500": "#10b981",
		"600": "#059669",
		"700": "#047857",
		"800": "#065f46",
		"900": "#064e3b",
		"950": "#022c22",
	}},
	{Name: "green", Palette: Palette{
		"50":  "#f0fdf4",
		"100": "#dcfce7",
		"200": "#bbf7d0",
		"300": "#86efac",
		"400": "#4ade80",
		"500": "#22c55e",
		"600": "#16a34a",
		"700": "#15803d",
		"800": "#166534",
		"900": "#14532d",
		"950": "#052e16",
	}},
	{Name: "lime", Palette: Palette{
		"50":  "#f7fee7",
		"100": "#ecfccb",
		"200": "#d9f99d",
		"300": "#bef264",
		"400": "#a3e635",
		"500": "#84cc16",
		"600": "#65a30d",
		"700": "#4d7c0f",
		"800": "#3f6212",
		"900": "#365314",
		"950": "#1a2e05",
	}},
	{Name: "orange", Palette: Palette{
		"50":  "#fff7ed",
		"100": "#ffedd5",
		"200": "#fed7aa",
		"300": "#fdba74",
		"400": "#fb923c",
		"500": "#f97316",
		"600": "#ea580c",
		"700": "#c2410c",
		"800": "#9a3412",
		"900": "#7c2d12",
		"950": "#431407",
	}},
	{Name: "amber", Palette: Palette{
		"50":  "#fffbeb",
		"100": "#fef3c7",
		"200": "#fde68a",
		"300": "#fcd34d",
		"400": "#fbbf24",
		"500": "#f59e0b",
		"600": "#d97706",
		"700": "#b45309",
		"800": "#92400e",
		"900": "#78350f",
		"950": "#451a03",
	}},
	{Name: "yellow", Palette: Palette{
		"50":  "#fefce8",
		"100": "#fef9c3",
		"200": "#fef08a",
		"300": "#fde047",
		"400": "#facc15",
		"500": "#eab308",
		"600": "#ca8a04",
		"700": "#a16207",
		"800": "#854d0e",
		"900": "#713f12",
		"950": "#422006",
	}},
	{Name: "teal", Palette: Palette{
		"50":  "#f0fdfa",
		"100": "#ccfbf1",
		"200": "#99f6e4",
		"300": "#5eead4",
		"400": "#2dd4bf",
		"500": "#14b8a6",
		"600": "#0d9488",
		"700": "#0f766e",
		"800": "#115e59",
		"900": "#134e4a",
		"950": "#042f2e",
	}},
	{Name: "cyan", Palette: Palette{
		"50":  "#ecfeff",
		"100": "#cffafe",
		"200": "#a5f3fc",
		"300": "#67e8f9",
		"400": "#22d3ee",
		"500": "#06b6d4",
		"600": "#0891b2",
		"700": "#0e7490",
		"800": "#155e75",
		"900": "#164e63",
		"950": "#083344",
	}},
	{Name: "sky", Palette: Palette{
		"50":  "#f0f9ff",
		"100": "#e0f2fe",
		"200": "#bae6fd",
		"300": "#7dd3fc",
		"400": "#38bdf8",
		"500": "#0ea5e9",
		"600": "#0284c7",
		"700": "#0369a1",
		"800": "#075985",
		"900": "#0c4a6e",
		"950": "#082f49",
	}},
	{Name: "blue", Palette: Palette{
		"50":  "#eff6ff",
		"100": "#dbeafe",
		"200": "#bfdbfe",
		"300": "#93c5fd",
		"400": "#60a5fa",
		"500": "#3b82f6",
		"600": "#2563eb",
		"700": "#1d4ed8",
		"800": "#1e40af",
		"900": "#1e3a8a",
		"950": "#172554",
	}},
	{Name: "indigo", Palette: Palette{
		"50":  "#eef2ff",
		"100": "#e0e7ff",
		"200": "#c7d2fe",
		"300": "#a5b4fc",
		"400": "#818cf8",
		"500": "#6366f1",
		"600": "#4f46e5",
		"700": "#4338ca",
		"800": "#3730a3",
		"900": "#312e81",
		"950": "#1e1b4b",
	}},
	{Name: "violet", Palette: Palette{
		"50":  "#f5f3ff",
		"100": "#ede9fe",
		"200": "#ddd6fe",
		"300": "#c4b5fd",
		"400": "#a78bfa",
		"500": "#8b5cf6",
		"600": "#7c3aed",
		"700": "#6d28d9",
		"800": "#5b21b6",
		"900": "#4c1d95",
		"950": "#2e1065",
	}},
	{Name: "purple", Palette: Palette{
		"50":  "#faf5ff",
		"100": "#f3e8ff",
		"200": "#e9d5ff",
		"300": "#d8b4fe",
		"400": "#c084fc",
		"500": "#a855f7",
		"600": "#9333ea",
		"700": "#7e22ce",
		"800": "#6b21a8",
		"900": "#581c87",
		"950": "#3b0764",
	}},
	{Name: "fuchsia", Palette: Palette{
		"50":  "#fdf4ff",
		"100": "#fae8ff",
		"200": "#f5d0fe",
		"300": "#f0abfc",
		"400": "#e879f9",
		"500": "#d946ef",
		"600": "#c026d3",
		"700": "#a21caf",
		"800": "#86198f",
		"900": "#701a75",
		"950": "#4a044e",
	}},
	{Name: "pink", Palette: Palette{
		"50":  "#fdf2f8",
		"100": "#fce7f3",
		"200": "#fbcfe8",
		"300": "#f9a8d4",
		"400": "#f472b6",
		"500": "#ec4899",
		"600": "#db2777",
		"700": "#be185d",
		"800": "#9d174d",
		"900": "#831843",
		"950": "#500724",
	}},
	{Name: "rose", Palette: Palette{
		"50":  "#fff1f2",
		"100": "#ffe4e6",
		"200": "#fecdd3",
		"300": "#fda4af",
		"400": "#fb7185",
		"500": "#f43f5e",
		"600": "#e11d48",
		"700": "#be123c",
		"800": "#9f1239",
		"900": "#881337",
		"950": "#4c0519",
	}},
	{Name: "coral", Palette: Palette{
		"50":  "#fff5f3",
		"100": "#ffece8",
		"200": "#ffd5cc",
		"300": "#ffb5a3",
		"400": "#ff8a6d",
		"500": "#ff6642",
		"600": "#f04d28",
		"700": "#de3b1b",
		"800": "#be3218",
		"900": "#9f2f1b",
		"950": "#57140d",
	}},
	{Name: "sage", Palette: Palette{
		"50":  "#f2f8f5",
		"100": "#e1f0e8",
		"200": "#c3e1d1",
		"300": "#9ac9b3",
		"400": "#6aab90",
		"500": "#4a8d73",
		"600": "#3a725c",
		"700": "#2f5a49",
		"800": "#28473d",
		"900": "#243b34",
		"950": "#12201c",
	}},
	{Name: "champagne", Palette: Palette{
		"50":  "#fdfcf9",
		"100": "#fbf7ef",
		"200": "#f7eedb",
		"300": "#f1e1c0",
		"400": "#e8cf9e",
		"500": "#ddb878",
		"600": "#cf9e56",
		"700": "#b08242",
		"800": "#8f6a3a",
		"900": "#755735",
		"950": "#3f2c1a",
	}},
	{Name: "crimson", Palette: Palette{
		"50":  "#fff5f5",
		"100": "#ffe3e3",
		"200": "#ffc9c9",
		"300": "#ffa8a8",
		"400": "#ff8787",
		"500": "#f64f4f",
		"600": "#e02424",
		"700": "#c21e1e",
		"800": "#9f1d1d",
		"900": "#881f1f",
		"950": "#4c0d0d",
	}},
	{Name: "navy", Palette: Palette{
		"50":  "#f0f4f8",
		"100": "#dbe4ee",
		"200": "#bac8dd",
		"300": "#91a7c4",
		"400": "#5c82b8",
		"500": "#3b5998",
		"600": "#2d4373",
		"700": "#233663",
		"800": "#1e3058",
		"900": "#1b2a4a",
		"950": "#0f1628",
	}},
	{Name: "peach", Palette: Palette{
		"50":  "#fff7ed",
		"100": "#ffedd5",
		"200": "#fed7aa",
		"300": "#fdba74",
		"400": "#fb923c",
		"500": "#f97316",
		"600": "#ea580c",
		"700": "#c2410c",
		"800": "#9a3412",
		"900": "#7c2d12",
		"950": "#431407",
	}},
	{Name: "terracotta", Palette: Palette{
		"50":  "#fdf8f6",
		"100": "#faeee8",
		"200": "#f5d5c8",
		"300": "#eeb29b",
		"400": "#e38665",
		"500": "#d1613f",
		"600": "#ba4b2a",
		"700": "#9d3e22",
		"800": "#833621",
		"900": "#6d321f",
		"950": "#3b170b",
	}},
	{Name: "steelblue", Palette: Palette{
		"50":  "#f4f7f9",
		"100": "#e8eef3",
		"200": "#cedfe8",
		"300": "#a5c0d6",
		"400": "#7699bf",
		"500": "#5679a8",
		"600": "#42638c",
		"700": "#354f70",
		"800": "#2e435b",
		"900": "#2a3b4c",
		"950": "#19212c",
	}},
	{Name: "mustard", Palette: Palette{
		"50":  "#fefee6",
		"100": "#fefcc4",
		"200": "#fef693",
		"300": "#fceb58",
		"400": "#f9dc1c",
		"500": "#eab308",
		"600": "#ca8a04",
		"700": "#a16207",
		"800": "#854d0e",
		"900": "#713f12",
		"950": "#422006",
	}},
	{Name: "maroon", Palette: Palette{
		"50":  "#fdf2f2",
		"100": "#fae2e2",
		"200": "#f4c6c6",
		"300": "#e99c9c",
		"400": "#dd6b6b",
		"500": "#c94444",
		"600": "#b02e2e",
		"700": "#912222",
		"800": "#771f1f",
		"900": "#641f1f",
		"950": "#380d0d",
	}},
	{Name: "copper", Palette: Palette{
		"50":  "#fdf6f3",
		"100": "#fcece5",
		"200": "#f8d4c4",
		"300": "#f2b496",
		"400": "#e98f64",
		"500": "#df7441",
		"600": "#cd5c31",
		"700": "#ab4927",
		"800": "#8d3f27",
		"900": "#753825",
		"950": "#401810",
	}},
	{Name: "olive", Palette: Palette{
		"50":  "#f4f7ec",
		"100": "#e6edcf",
		"200": "#cddba8",
		"300": "#a8bf78",
		"400": "#829b52",
		"500": "#637d3a",
		"600": "#4d632f",
		"700": "#3f4d29",
		"800": "#353f25",
		"900": "#2e3522",
		"950": "#171c0f",
	}},
	{Name: "burgundy", Palette: Palette{
		"50":  "#faf2f3",
		"100": "#f3e1e3",
		"200": "#e4c2c6",
		"300": "#d0949d",
		"400": "#c26670",
		"500": "#a6444f",
		"600": "#8c3540",
		"700": "#742d36",
		"800": "#61282e",
		"900": "#522428",
		"950": "#2b1013",
	}},
	{Name: "denim", Palette: Palette{
		"50":  "#f4f6f9",
		"100": "#e6eaf2",
		"200": "#cdd4e4",
		"300": "#a5b3cc",
		"400": "#758aad",
		"500": "#546a8f",
		"600": "#405477",
		"700": "#334460",
		"800": "#2c3a4f",
		"900": "#273342",
		"950": "#171e29",
	}},
	{Name: "forest", Palette: Palette{
		"50":  "#f2f9f3",
		"100": "#e1f2e2",
		"200": "#c3e5c6",
		"300": "#97d0a0",
		"400": "#66b574",
		"500": "#439652",
		"600": "#347a41",
		"700": "#2a6136",
		"800": "#254f2f",
		"900": "#22432a",
		"950": "#112515",
	}},
	{Name: "blush", Palette: Palette{
		"50":  "#fef5f7",
		"100": "#ffe4e8",
		"200": "#ffcdd6",
		"300": "#f8b4c0",
		"400": "#f38da1",
		"500": "#e84a6f",
		"600": "#d02e52",
		"700": "#af2644",
		"800": "#91243b",
		"900": "#792334",
		"950": "#430f19",
	}},
	{Name: "slateblue", Palette: Palette{
		"50":  "#f5f7fc",
		"100": "#ececf5",
		"200": "#d4d9eb",
		"300": "#b1bad9",
		"400": "#8596c4",
		"500": "#6378a8",
		"600": "#4f5f8a",
		"700": "#424d6f",
		"800": "#394259",
		"900": "#33394c",
		"950": "#1d2233",
	}},
}
