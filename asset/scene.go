package asset

// DefaultScene is the built-in TOML scene used when no scene file is found
const DefaultScene = `

# === Curves ===

[[curves]]
name = "track"
type = "CatmullRom"
closed = true
points = [
    [-10.0, 0.0, -6.0],
    [0.0, 0.0, -9.0],
    [10.0, 0.0, -6.0],
    [12.0, 0.0, 4.0],
    [0.0, 0.0, 8.0],
    [-12.0, 0.0, 4.0],
]

[[curves]]
name = "shuttle-line"
type = "Line"
points = [
    [-8.0, 0.0, 0.0],
    [8.0, 0.0, 0.0],
]

# === Triggers ===

[[triggers]]
label = "north-gate"
position = [0.0, 0.0, -9.0]
radius = 1.5

[[triggers]]
label = "south-gate"
position = [0.0, 0.0, 8.0]
radius = 1.5

[[triggers]]
label = "center"
position = [0.0, 0.0, 0.0]
radius = 1.0

# === Followers ===

[[followers]]
name = "runner"
curve = "track"
dur = 8000.0
loop = true
rotate = true
constant_speed = true
triggers = ["north-gate", "south-gate"]

[[followers]]
name = "shuttle"
curve = "shuttle-line"
dur = 3000.0
delay = 500.0
reversible = true
triggers = ["center"]

# === Clones ===

[[clones]]
curve = "track"
spacing = 4.0
`
