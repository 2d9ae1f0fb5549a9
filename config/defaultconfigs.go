package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCellBackground: false,
		Colors: ConfigColors{
			EmptyColor: 244,
			ShipColor:  33,
			HitColor:   196,
			MissColor:  250,
			LabelColor: 230,
		},
	}

	DefaultConfig = Config{
		InputDir:  "data",
		OutputDir: "",
		Theme:     DefaultTheme,
	}
}
