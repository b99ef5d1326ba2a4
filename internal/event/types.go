package event

// EnemyKind selects enemy behavior, sprites and points.
type EnemyKind uint8

const (
	Bee EnemyKind = iota
	Butterfly
	Owl
	CapturedFighter
)

func (k EnemyKind) String() string {
	switch k {
	case Bee:
		return "bee"
	case Butterfly:
		return "butterfly"
	case Owl:
		return "owl"
	case CapturedFighter:
		return "captured_fighter"
	default:
		return "unknown"
	}
}

// CaptureState is the phase of the capture sequence shared by the player
// and the capturing enemy.
type CaptureState uint8

const (
	NoCapture CaptureState = iota
	CaptureAttacking
	Capturing
	Captured
	Recapturing
	Dual
)

func (s CaptureState) String() string {
	switch s {
	case NoCapture:
		return "NoCapture"
	case CaptureAttacking:
		return "CaptureAttacking"
	case Capturing:
		return "Capturing"
	case Captured:
		return "Captured"
	case Recapturing:
		return "Recapturing"
	case Dual:
		return "Dual"
	default:
		return "Unknown"
	}
}

// Channel is a sound mixer channel. A new sound on a channel cuts the
// previous one.
type Channel uint8

const (
	ChShot   Channel = 0
	ChBomb   Channel = 0
	ChAttack Channel = 1
	ChJingle Channel = 2

	ChannelCount = 3
)

// Sound is a logical sound effect name.
type Sound string

const (
	SeCountStage   Sound = "se_get_1"
	SeMyShot       Sound = "se_pyuun"
	SeDamage       Sound = "se_pow_1"
	SeBombZako     Sound = "se_zugyan"
	SeBombPlayer   Sound = "se_zugyan"
	SeBombCaptured Sound = "se_gyuin"
	SeAttackStart  Sound = "attack_start"
	SeTractorBeam1 Sound = "se_pipipi_2"
	SeTractorBeam2 Sound = "se_pipipi_1"
	SeExtendShip   Sound = "jingle_1up"
	SeRecapture    Sound = "jingle_item01"
)
