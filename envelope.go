package polysynth

import "math"

// EnvelopeStage is one of the four ADSR stages.
type EnvelopeStage int

const (
	StageAttack EnvelopeStage = iota
	StageDecay
	StageSustain
	StageRelease
	numStages
)

// minLevel is the level Attack starts from and Release decays toward, and
// the threshold at or below which a released envelope is inactive.
const minLevel = 1e-4

// Envelope is a four-stage exponential ADSR. Level moves geometrically
// rather than linearly between stage endpoints because the ear perceives
// exponential changes in loudness as linear.
type Envelope struct {
	rate float64

	level      float64
	multiplier float64

	currStage EnvelopeStage
	nextStage [numStages]EnvelopeStage

	values [numStages]float64 // seconds for A/D/R, absolute level for S

	sampleIndex uint64
	nextStageAt uint64
}

// NewEnvelope creates an Envelope at the given sample rate with the given
// ADSR values (seconds for attack/decay/release, absolute level for
// sustain), starting in the Attack stage.
func NewEnvelope(rate float64, adsr [4]float64) *Envelope {
	e := &Envelope{
		rate:  rate,
		level: minLevel,
	}
	e.values[StageAttack] = adsr[0]
	e.values[StageDecay] = adsr[1]
	e.values[StageSustain] = adsr[2]
	e.values[StageRelease] = adsr[3]

	e.nextStage[StageAttack] = StageDecay
	e.nextStage[StageDecay] = StageSustain
	e.nextStage[StageSustain] = StageSustain
	e.nextStage[StageRelease] = StageRelease

	e.enterStage(StageAttack)
	return e
}

// NoteOn resets the envelope to the Attack stage (retrigger).
func (e *Envelope) NoteOn() {
	e.enterStage(StageAttack)
}

// NoteOff moves the envelope to the Release stage, decaying from wherever
// the envelope currently is.
func (e *Envelope) NoteOff() {
	e.enterStage(StageRelease)
}

// IsActive reports whether the envelope still has audible output.
func (e *Envelope) IsActive() bool {
	return !(e.currStage == StageRelease && e.level <= minLevel)
}

// Next returns the envelope's level for the next sample and advances its
// internal state.
func (e *Envelope) Next() float64 {
	if e.currStage != StageSustain {
		if e.sampleIndex == e.nextStageAt {
			e.enterStage(e.nextStage[e.currStage])
		}
		e.level *= e.multiplier
		e.sampleIndex++
	}
	return e.level
}

// SetValue updates a stage's duration/level, applying the change
// immediately if the envelope is currently in or transitioning through
// that stage.
func (e *Envelope) SetValue(stage EnvelopeStage, value float64) {
	e.values[stage] = value
	if e.currStage != stage && !(e.currStage == StageDecay && stage == StageSustain) {
		return
	}

	switch {
	case e.currStage == StageSustain:
		e.level = value

	case e.currStage == StageDecay && stage == StageSustain:
		samplesLeft := e.nextStageAt - e.sampleIndex
		e.calcStageMultiplier(e.level, math.Max(value, minLevel), samplesLeft)

	default:
		var nextLevel float64
		switch e.currStage {
		case StageAttack:
			nextLevel = 1.0
		case StageDecay:
			nextLevel = math.Max(e.values[StageSustain], minLevel)
		case StageRelease:
			nextLevel = minLevel
		}

		percentDone := float64(e.sampleIndex) / float64(e.nextStageAt)
		percentLeft := 1.0 - percentDone
		samplesLeft := uint64(percentLeft * value * e.rate)
		e.nextStageAt = e.sampleIndex + samplesLeft
		e.calcStageMultiplier(e.level, nextLevel, samplesLeft)
	}
}

// calcStageMultiplier computes the per-sample multiplicative factor that
// moves level geometrically from start toward end over numSamples samples,
// avoiding a per-sample call to exp. The factor 1 + ln(end/start)/n is a
// first-order approximation, so after numSamples steps a rising level falls
// short of end and a falling one overshoots it, more so for short stages.
func (e *Envelope) calcStageMultiplier(start, end float64, numSamples uint64) {
	if numSamples == 0 {
		e.multiplier = 1.0
		return
	}
	e.multiplier = 1.0 + (math.Log(end)-math.Log(start))/float64(numSamples)
}

func (e *Envelope) enterStage(stage EnvelopeStage) {
	e.currStage = stage
	e.sampleIndex = 0

	if stage == StageSustain {
		e.nextStageAt = 0
	} else {
		e.nextStageAt = uint64(e.values[stage] * e.rate)
	}

	switch stage {
	case StageAttack:
		e.level = minLevel
		e.calcStageMultiplier(e.level, 1.0, e.nextStageAt)
	case StageDecay:
		e.level = 1.0
		e.calcStageMultiplier(e.level, math.Max(e.values[StageSustain], minLevel), e.nextStageAt)
	case StageSustain:
		e.level = e.values[StageSustain]
		e.multiplier = 1.0
	case StageRelease:
		e.calcStageMultiplier(e.level, minLevel, e.nextStageAt)
	}
}
