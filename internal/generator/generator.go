package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// Skill types understood by the generator.
const (
	SkillProgramming    = "programming"
	SkillProblemSolving = "problemSolving"
	SkillPractical      = "practical"
)

// Question archetypes. Each archetype has its own prompt shape and time
// budget.
const (
	archetypeCodeAnalysis   = "codeAnalysis"
	archetypeDebugging      = "debugging"
	archetypeImplementation = "implementation"
	archetypeAlgorithm      = "algorithm"
	archetypeOptimization   = "optimization"
	archetypeRealWorld      = "realWorld"
	archetypeBestPractice   = "bestPractice"
)

var archetypesBySkill = map[string][]string{
	SkillProgramming:    {archetypeCodeAnalysis, archetypeDebugging, archetypeImplementation},
	SkillProblemSolving: {archetypeAlgorithm, archetypeOptimization},
	SkillPractical:      {archetypeRealWorld, archetypeBestPractice},
}

var archetypeTimeLimits = map[string]int{
	archetypeCodeAnalysis:   120,
	archetypeDebugging:      90,
	archetypeImplementation: 150,
	archetypeAlgorithm:      180,
	archetypeOptimization:   200,
	archetypeRealWorld:      120,
	archetypeBestPractice:   90,
}

const maxDistractors = 3

// SkillRequest asks for a number of questions for one skill/topic pair.
type SkillRequest struct {
	Type          string `json:"type" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	QuestionCount int    `json:"question_count"`
}

// SkillSets are predefined bundles for common role archetypes.
var SkillSets = map[string][]SkillRequest{
	"pythonDeveloper": {
		{Type: SkillProgramming, Topic: "python", QuestionCount: 4},
		{Type: SkillProblemSolving, Topic: "dataStructures", QuestionCount: 3},
		{Type: SkillPractical, Topic: "webDevelopment", QuestionCount: 2},
	},
	"webDeveloper": {
		{Type: SkillProgramming, Topic: "javascript", QuestionCount: 4},
		{Type: SkillPractical, Topic: "webDevelopment", QuestionCount: 3},
		{Type: SkillProblemSolving, Topic: "dataStructures", QuestionCount: 2},
	},
	"dataScientist": {
		{Type: SkillProgramming, Topic: "python", QuestionCount: 3},
		{Type: SkillProblemSolving, Topic: "dataStructures", QuestionCount: 4},
		{Type: SkillPractical, Topic: "webDevelopment", QuestionCount: 2},
	},
}

// Generator synthesizes themed multiple-choice questions from the topic
// pools. The random source is injected so tests can be deterministic.
type Generator struct {
	rng *rand.Rand
}

// New builds a generator around the given random source. A nil source gets
// a time-seeded one.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// GenerateQuestions produces count questions for one skill/topic pair. The
// archetype is picked at random among those the topic's pool can serve.
func (g *Generator) GenerateQuestions(skillType, topic string, difficulty models.Difficulty, count int) []models.Question {
	archetypes, ok := archetypesBySkill[skillType]
	if !ok {
		skillType = SkillProgramming
		archetypes = archetypesBySkill[SkillProgramming]
	}
	pool := poolFor(topic)

	available := make([]string, 0, len(archetypes))
	for _, a := range archetypes {
		if g.hasData(a, pool) {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return nil
	}

	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		archetype := available[g.rng.Intn(len(available))]
		q := g.buildQuestion(archetype, skillType, topic, pool)
		q.Difficulty = difficulty
		questions = append(questions, q)
	}
	return questions
}

// GenerateSkillBasedExam concatenates questions across all requested skills,
// shuffles the combined set and sums the per-question time budgets.
func (g *Generator) GenerateSkillBasedExam(skills []SkillRequest, difficulty models.Difficulty) models.Exam {
	var questions []models.Question
	topics := make([]string, 0, len(skills))

	for _, skill := range skills {
		count := skill.QuestionCount
		if count <= 0 {
			count = 3
		}
		questions = append(questions, g.GenerateQuestions(skill.Type, skill.Topic, difficulty, count)...)
		topics = append(topics, skill.Topic)
	}

	g.shuffleQuestions(questions)

	totalTime := 0
	for _, q := range questions {
		totalTime += q.TimeLimitSeconds
	}

	joined := strings.Join(topics, ", ")
	return models.Exam{
		Title:            fmt.Sprintf("Practical Skills Exam - %s", joined),
		Description:      fmt.Sprintf("Comprehensive exam covering practical skills in %s", joined),
		MaxScore:         100,
		Questions:        questions,
		TotalQuestions:   len(questions),
		TimeLimitSeconds: totalTime,
		Difficulty:       difficulty,
		Skills:           topics,
		Status:           models.ExamStatusDraft,
	}
}

func (g *Generator) hasData(archetype string, pool topicPool) bool {
	switch archetype {
	case archetypeCodeAnalysis:
		return len(pool.CodeSnippets) > 0
	case archetypeDebugging:
		return len(pool.ErrorCases) > 0
	case archetypeImplementation:
		return len(pool.Requirements) > 0
	case archetypeAlgorithm:
		return len(pool.Scenarios) > 0
	case archetypeOptimization:
		return len(pool.Optimizations) > 0
	case archetypeRealWorld:
		// Real-world prompts always draw from the web development pool.
		return len(pools["webDevelopment"].Situations) > 0
	case archetypeBestPractice:
		return len(pools["softwareEngineering"].Practices) > 0
	}
	return false
}

func (g *Generator) buildQuestion(archetype, skillType, topic string, pool topicPool) models.Question {
	q := models.Question{
		QuestionID:       fmt.Sprintf("q_%s", uuid.NewString()),
		Type:             archetype,
		SkillType:        skillType,
		Topic:            topic,
		TimeLimitSeconds: archetypeTimeLimits[archetype],
	}

	switch archetype {
	case archetypeCodeAnalysis:
		snippet := pool.CodeSnippets[g.rng.Intn(len(pool.CodeSnippets))]
		q.Text = fmt.Sprintf("Analyze the following %s code and identify the issue:\n\n```%s\n%s\n```\n\nWhat is the problem with this code?", topic, snippet.Language, snippet.Code)
		q.Options = g.buildOptions(snippet.CorrectIssue, snippet.Issues)
		q.CorrectAnswer = snippet.CorrectIssue
		q.Explanation = snippet.Explanation

	case archetypeDebugging:
		errCase := pool.ErrorCases[g.rng.Intn(len(pool.ErrorCases))]
		q.Text = fmt.Sprintf("You are debugging a %s. The following error occurs:\n\n```\n%s\n```\n\nWhat is the most likely cause?", errCase.Context, errCase.Error)
		q.Options = g.buildOptions(errCase.CorrectCause, errCase.Causes)
		q.CorrectAnswer = errCase.CorrectCause
		q.Explanation = errCase.Explanation

	case archetypeImplementation:
		req := pool.Requirements[g.rng.Intn(len(pool.Requirements))]
		q.Text = fmt.Sprintf("Implement a function that %s. Choose the most efficient approach:", req.Requirement)
		q.Options = g.buildOptions(req.CorrectApproach, req.Approaches)
		q.CorrectAnswer = req.CorrectApproach
		q.Explanation = req.Explanation

	case archetypeAlgorithm:
		scenario := pool.Scenarios[g.rng.Intn(len(pool.Scenarios))]
		q.Text = fmt.Sprintf("Given the following scenario: %s\n\nWhat is the optimal algorithm to solve this problem?", scenario.Scenario)
		q.Options = g.buildOptions(scenario.CorrectAlgorithm, scenario.Algorithms)
		q.CorrectAnswer = scenario.CorrectAlgorithm
		q.Explanation = scenario.Explanation

	case archetypeOptimization:
		opt := pool.Optimizations[g.rng.Intn(len(pool.Optimizations))]
		q.Text = fmt.Sprintf("A %s is experiencing performance issues. The current implementation has %s. What would be the best optimization strategy?", opt.System, opt.CurrentIssue)
		q.Options = g.buildOptions(opt.CorrectStrategy, opt.Strategies)
		q.CorrectAnswer = opt.CorrectStrategy
		q.Explanation = opt.Explanation

	case archetypeRealWorld:
		situations := pools["webDevelopment"].Situations
		situation := situations[g.rng.Intn(len(situations))]
		q.Text = fmt.Sprintf("In a real-world scenario where %s, what would be the most appropriate solution?", situation.Situation)
		q.Options = g.buildOptions(situation.CorrectSolution, situation.Solutions)
		q.CorrectAnswer = situation.CorrectSolution
		q.Explanation = situation.Explanation

	case archetypeBestPractice:
		practices := pools["softwareEngineering"].Practices
		practice := practices[g.rng.Intn(len(practices))]
		q.Text = fmt.Sprintf("When %s, which approach follows industry best practices?", practice.Situation)
		q.Options = g.buildOptions(practice.CorrectSolution, practice.Solutions)
		q.CorrectAnswer = practice.CorrectSolution
		q.Explanation = practice.Explanation
	}

	return q
}

// buildOptions assembles the correct answer plus up to three random
// distractors and shuffles them.
func (g *Generator) buildOptions(correct string, candidates []string) []string {
	distractors := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != correct {
			distractors = append(distractors, c)
		}
	}
	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > maxDistractors {
		distractors = distractors[:maxDistractors]
	}

	options := append([]string{correct}, distractors...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (g *Generator) shuffleQuestions(questions []models.Question) {
	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
