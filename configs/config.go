package configs

// Constantes do jogo. Não existe arquivo de configuração: tudo vem daqui.
type Config struct {
	WindowTitle string
	TPS         int

	ScreenWidth  float64
	ScreenHeight float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	BallSize     float64

	BaseBallSpeed float64
	MaxBallSpeed  float64
	SpeedStep     float64
	Speed         float64

	// Transição para tela cheia.
	HitsToExpand   int
	AnimDuration   float64
	TitleBarOffset float64

	AI AIConfig
}

// Ajustes da IA (raquete 2).
type AIConfig struct {
	WarmupHits       int
	PerfectSpeed     float64
	ReactionDelay    float64
	MaxError         float64
	Smoothing        float64
	BaseSpeed        float64
	SpeedScale       float64
	Deadzone         float64
	ScoreMargin      int
	AssistDifficulty float64
	BaseDifficulty   float64
	RampFactor       float64
	MaxRamp          float64
}

func New() Config {
	return Config{
		WindowTitle: "Pong",
		TPS:         60,

		ScreenWidth:  800,
		ScreenHeight: 600,
		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleMargin: 50,
		BallSize:     25,

		BaseBallSpeed: 7.0,
		MaxBallSpeed:  14.0,
		SpeedStep:     1.0,
		Speed:         9.0,

		HitsToExpand:   2,
		AnimDuration:   2.5,
		TitleBarOffset: 35,

		AI: AIConfig{
			WarmupHits:       2,
			PerfectSpeed:     9.5,
			ReactionDelay:    0.2,
			MaxError:         100,
			Smoothing:        0.15,
			BaseSpeed:        5.0,
			SpeedScale:       4.0,
			Deadzone:         0.01,
			ScoreMargin:      3,
			AssistDifficulty: 0.4,
			BaseDifficulty:   0.7,
			RampFactor:       0.03,
			MaxRamp:          0.95,
		},
	}
}

// Raio da bola, usado pela IA para mirar.
func (c Config) BallRadius() float64 {
	return c.BallSize / 2
}

// Posição X (local à arena) da raquete da IA para uma arena de largura w.
func (c Config) RightPaddleX(w float64) float64 {
	return w - c.PaddleMargin - c.PaddleWidth
}
