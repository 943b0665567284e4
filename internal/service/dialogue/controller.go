// Package dialogue 实现导览对话的阶段状态机：每次用户操作对应一次阶段迁移与一批新消息。
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/museum-guide/backend/internal/analysis/intent"
	"github.com/zhouzirui/museum-guide/backend/internal/logger"
	"github.com/zhouzirui/museum-guide/backend/internal/model/artifact"
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
	"github.com/zhouzirui/museum-guide/backend/internal/model/quiz"
	"github.com/zhouzirui/museum-guide/backend/internal/telemetry"
)

// QuizGenerator 为单个文物出题，实现必须自行处理失败并总是返回可用的题目。
type QuizGenerator interface {
	Generate(ctx context.Context, a artifact.Artifact, difficulty quiz.Difficulty) quiz.Item
}

// Controller 持有阶段迁移规则。它本身无状态，可被所有会话共享；调用方保证同一会话串行调用。
type Controller struct {
	artifacts   artifact.Store
	profiles    profile.Store
	gen         QuizGenerator
	now         func() time.Time
	offerSize   int
	concurrency int
	log         *zap.SugaredLogger
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock 替换时间源。
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithOfferSize 设置每轮展示给访客的文物数量。
func WithOfferSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.offerSize = n
		}
	}
}

// WithConcurrency 限制同时进行的出题数量。
func WithConcurrency(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger 替换默认日志。
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// CallOption 调整单次调用的行为。
type CallOption func(*callOptions)

type callOptions struct {
	progress func(chat.Turn)
}

// WithProgress 在出题开始前收到加载中的消息，便于实时推送给前端。
func WithProgress(fn func(chat.Turn)) CallOption {
	return func(o *callOptions) {
		o.progress = fn
	}
}

// NewController 创建状态机。
func NewController(artifacts artifact.Store, profiles profile.Store, gen QuizGenerator, opts ...Option) *Controller {
	c := &Controller{
		artifacts:   artifacts,
		profiles:    profiles,
		gen:         gen,
		now:         time.Now,
		offerSize:   MaxSelection,
		concurrency: 4,
		log:         logger.Named("dialogue"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply 按操作类型分发到对应的迁移。
func (c *Controller) Apply(ctx context.Context, s *chat.Session, a Action, opts ...CallOption) (Result, error) {
	if err := a.Validate(); err != nil {
		return c.result(s, len(s.Turns)), err
	}
	switch a.Kind {
	case ActionStart:
		return c.Start(ctx, s)
	case ActionSelectAgeGroup:
		return c.SelectAgeGroup(ctx, s, a.ProfileID)
	case ActionTourCheck:
		return c.AnswerTourCheck(ctx, s, *a.HasTour)
	case ActionConfirmArtifacts:
		return c.ConfirmArtifactSelection(ctx, s, a.ArtifactIDs, opts...)
	case ActionBeginQuiz:
		return c.BeginQuiz(ctx, s)
	case ActionSubmitAnswer:
		return c.SubmitAnswer(ctx, s, *a.OptionIndex)
	case ActionAdvance:
		return c.Advance(ctx, s)
	case ActionReviewWrong:
		return c.ReviewWrongAnswers(ctx, s)
	case ActionEnd:
		return c.End(ctx, s)
	case ActionRestart:
		return c.Restart(ctx, s)
	case ActionText:
		return c.HandleText(ctx, s, a.Text, opts...)
	case ActionHelp:
		return c.Help(ctx, s)
	default:
		return c.result(s, len(s.Turns)), fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}
}

// Start 发出问候语与年龄段按钮。
func (c *Controller) Start(_ context.Context, s *chat.Session) (Result, error) {
	start := len(s.Turns)
	if err := c.guard(s, ActionStart); err != nil {
		return c.rejectStage(s, start, err)
	}
	c.greet(s)
	return c.result(s, start), nil
}

// SelectAgeGroup 记录访客档案并询问是否已经制作展览路线。
func (c *Controller) SelectAgeGroup(_ context.Context, s *chat.Session, profileID string) (Result, error) {
	return c.selectAgeGroup(s, len(s.Turns), strings.TrimSpace(profileID), true)
}

// AnswerTourCheck 处理是否制作了展览路线的回答。
func (c *Controller) AnswerTourCheck(_ context.Context, s *chat.Session, hasTour bool) (Result, error) {
	return c.answerTourCheck(s, len(s.Turns), hasTour, true)
}

// ConfirmArtifactSelection 校验所选文物并逐个出题，完成后进入 quiz_ready。
func (c *Controller) ConfirmArtifactSelection(ctx context.Context, s *chat.Session, ids []string, opts ...CallOption) (Result, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := len(s.Turns)
	if err := c.guard(s, ActionConfirmArtifacts); err != nil {
		return c.rejectStage(s, start, err)
	}
	m := c.messages(s)

	ids = dedupe(ids)
	if n := len(ids); n < MinSelection {
		return c.reject(s, start, fmt.Errorf("%w: %d selected", ErrInvalidSelectionSize, n), fmt.Sprintf(m.TooFew, n, MinSelection))
	} else if n > MaxSelection {
		return c.reject(s, start, fmt.Errorf("%w: %d selected", ErrInvalidSelectionSize, n), fmt.Sprintf(m.TooMany, n, MaxSelection))
	}

	selected := make([]artifact.Artifact, 0, len(ids))
	var unknown []string
	for _, id := range ids {
		a, ok := c.artifacts.FindByID(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		selected = append(selected, a)
	}
	if len(unknown) > 0 {
		joined := strings.Join(unknown, ", ")
		return c.reject(s, start, fmt.Errorf("%w: %s", ErrUnknownArtifact, joined), fmt.Sprintf(m.UnknownArtifact, joined))
	}

	names := make([]string, len(selected))
	for i, a := range selected {
		names[i] = a.Name
	}
	c.echo(s, fmt.Sprintf(m.SelectionEcho, len(selected), strings.Join(names, ", ")))

	loading := c.say(s, fmt.Sprintf(m.Loading, len(selected)), &chat.Payload{Kind: chat.PayloadLoading})
	loadingIdx := len(s.Turns) - 1
	if o.progress != nil {
		o.progress(loading)
	}

	items := c.generate(ctx, s.ID, selected, c.difficulty(s))

	s.SelectedArtifacts = ids
	s.Quizzes = items
	s.CurrentIndex = 0
	s.CorrectCount = 0
	s.Answers = nil

	// 加载中的消息原地改写为就绪提示，这是消息日志唯一允许的修改。
	ready := &s.Turns[loadingIdx]
	ready.Text = fmt.Sprintf(m.Ready, len(items))
	ready.Timestamp = c.now()
	ready.Payload = &chat.Payload{
		Kind:    chat.PayloadButtons,
		Buttons: []chat.Button{{Label: m.ReadyButton, Action: string(ActionBeginQuiz)}},
	}
	s.Stage = chat.StageQuizReady
	return c.result(s, start), nil
}

// BeginQuiz 出第一题。
func (c *Controller) BeginQuiz(_ context.Context, s *chat.Session) (Result, error) {
	start := len(s.Turns)
	if err := c.guard(s, ActionBeginQuiz); err != nil {
		return c.rejectStage(s, start, err)
	}
	if s.TotalQuestions() == 0 {
		return c.rejectStage(s, start, fmt.Errorf("%w: no quiz generated", ErrIllegalTransition))
	}
	c.echo(s, c.messages(s).ReadyButton)
	c.askQuestion(s)
	return c.result(s, start), nil
}

// SubmitAnswer 判分并给出解析。
func (c *Controller) SubmitAnswer(_ context.Context, s *chat.Session, optionIndex int) (Result, error) {
	return c.submitAnswer(s, len(s.Turns), optionIndex, true)
}

// Advance 进入下一题，最后一题之后给出成绩。
func (c *Controller) Advance(_ context.Context, s *chat.Session) (Result, error) {
	start := len(s.Turns)
	if err := c.guard(s, ActionAdvance); err != nil {
		return c.rejectStage(s, start, err)
	}
	if s.CurrentIndex < s.TotalQuestions() {
		c.askQuestion(s)
	} else {
		c.showResult(s)
	}
	return c.result(s, start), nil
}

// ReviewWrongAnswers 列出最多三道错题，阶段不变。
func (c *Controller) ReviewWrongAnswers(_ context.Context, s *chat.Session) (Result, error) {
	start := len(s.Turns)
	if err := c.guard(s, ActionReviewWrong); err != nil {
		return c.rejectStage(s, start, err)
	}
	m := c.messages(s)

	wrong := s.WrongAnswers()
	text := m.NoWrong
	if len(wrong) > 0 {
		if len(wrong) > 3 {
			wrong = wrong[:3]
		}
		items := make([]string, len(wrong))
		for i, w := range wrong {
			items[i] = fmt.Sprintf(m.ReviewItem, truncate(w.Question, 50), w.ChosenText, w.CorrectText)
		}
		text = m.ReviewTitle + "\n\n" + strings.Join(items, "\n\n")
	}
	c.say(s, text, &chat.Payload{
		Kind: chat.PayloadButtons,
		Buttons: []chat.Button{
			{Label: m.RestartButton, Action: string(ActionRestart)},
			{Label: m.EndButton, Action: string(ActionEnd)},
		},
	})
	return c.result(s, start), nil
}

// End 结束对话。
func (c *Controller) End(_ context.Context, s *chat.Session) (Result, error) {
	return c.end(s, len(s.Turns))
}

// Restart 从成绩页重新选文物（保留档案），从结束状态则清空整个会话重新问候。
func (c *Controller) Restart(_ context.Context, s *chat.Session) (Result, error) {
	return c.restart(s, len(s.Turns))
}

// Help 显示帮助。
func (c *Controller) Help(_ context.Context, s *chat.Session) (Result, error) {
	start := len(s.Turns)
	c.say(s, c.messages(s).Help, nil)
	return c.result(s, start), nil
}

// HandleText 用关键词识别自由输入：结束、重来、帮助，以及当前阶段能直接理解的回答。
func (c *Controller) HandleText(_ context.Context, s *chat.Session, text string, _ ...CallOption) (Result, error) {
	start := len(s.Turns)
	text = strings.TrimSpace(text)
	if text == "" {
		c.say(s, c.messages(s).Guidance[s.Stage], nil)
		return c.result(s, start), nil
	}
	c.echo(s, text)

	decision := intent.Analyze(text)
	switch decision.Label {
	case intent.End:
		return c.end(s, start)
	case intent.Reset:
		return c.restart(s, start)
	case intent.Help:
		c.say(s, c.messages(s).Help, nil)
		return c.result(s, start), nil
	}

	switch s.Stage {
	case chat.StageAgeGroupSelect:
		if p, ok := c.profiles.FindByLabel(text); ok {
			return c.selectAgeGroup(s, start, p.ID, false)
		}
	case chat.StageTourCheck:
		switch decision.Label {
		case intent.Yes:
			return c.answerTourCheck(s, start, true, false)
		case intent.No:
			return c.answerTourCheck(s, start, false, false)
		}
	case chat.StageQuizQuestion:
		if decision.Label == intent.Option {
			return c.submitAnswer(s, start, decision.Option, false)
		}
	}

	c.say(s, c.messages(s).Guidance[s.Stage], nil)
	return c.result(s, start), nil
}

func (c *Controller) selectAgeGroup(s *chat.Session, start int, profileID string, echo bool) (Result, error) {
	if err := c.guard(s, ActionSelectAgeGroup); err != nil {
		return c.rejectStage(s, start, err)
	}
	p, ok := c.profiles.FindByID(profileID)
	if !ok {
		return c.reject(s, start, fmt.Errorf("%w: %q", ErrUnknownProfile, profileID), c.messages(s).UnknownProfile)
	}

	label := profileLabel(p, s.Language)
	if echo {
		c.echo(s, label)
	}
	s.ProfileID = p.ID

	m := c.messages(s)
	c.say(s, fmt.Sprintf(m.AskTour, label), &chat.Payload{
		Kind: chat.PayloadButtons,
		Buttons: []chat.Button{
			{Label: m.TourYes, Action: string(ActionTourCheck), Value: "yes"},
			{Label: m.TourNo, Action: string(ActionTourCheck), Value: "no"},
		},
	})
	s.Stage = chat.StageTourCheck
	return c.result(s, start), nil
}

func (c *Controller) answerTourCheck(s *chat.Session, start int, hasTour bool, echo bool) (Result, error) {
	if err := c.guard(s, ActionTourCheck); err != nil {
		return c.rejectStage(s, start, err)
	}
	m := c.messages(s)

	if !hasTour {
		if echo {
			c.echo(s, m.TourNo)
		}
		c.say(s, m.NoTour, restartPayload(m))
		s.Stage = chat.StageEnded
		return c.result(s, start), nil
	}

	if echo {
		c.echo(s, m.TourYes)
	}
	c.offer(s, func(n int) string { return fmt.Sprintf(m.TourLoaded, n) })
	return c.result(s, start), nil
}

func (c *Controller) submitAnswer(s *chat.Session, start int, optionIndex int, echo bool) (Result, error) {
	if err := c.guard(s, ActionSubmitAnswer); err != nil {
		return c.rejectStage(s, start, err)
	}
	m := c.messages(s)

	item, ok := s.CurrentQuiz()
	if !ok {
		return c.rejectStage(s, start, fmt.Errorf("%w: no current question", ErrIllegalTransition))
	}
	if !item.HasOption(optionIndex) {
		return c.reject(s, start,
			fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, optionIndex, len(item.Options)),
			fmt.Sprintf(m.OutOfRange, len(item.Options)))
	}

	chosen := item.Options[optionIndex]
	if echo {
		c.echo(s, optionLabel(optionIndex)+" "+chosen)
	}

	correct := optionIndex == item.Answer
	s.Answers = append(s.Answers, quiz.AnswerRecord{
		ItemID:      item.ID,
		ArtifactID:  item.ArtifactID,
		Question:    item.Question,
		Chosen:      optionIndex,
		ChosenText:  chosen,
		CorrectText: item.Correct(),
		Explanation: item.Explanation,
		Correct:     correct,
	})

	text := fmt.Sprintf(m.Correct, item.Explanation)
	if correct {
		s.CorrectCount++
	} else {
		text = fmt.Sprintf(m.Wrong, item.Correct(), item.Explanation)
	}

	next := m.NextButton
	if s.CurrentIndex+1 >= s.TotalQuestions() {
		next = m.ResultButton
	}
	c.say(s, text, &chat.Payload{
		Kind:    chat.PayloadFeedback,
		Correct: &correct,
		Buttons: []chat.Button{{Label: next, Action: string(ActionAdvance)}},
	})

	s.CurrentIndex++
	s.Stage = chat.StageQuizFeedback
	return c.result(s, start), nil
}

func (c *Controller) end(s *chat.Session, start int) (Result, error) {
	if err := c.guard(s, ActionEnd); err != nil {
		return c.rejectStage(s, start, err)
	}
	m := c.messages(s)
	c.say(s, m.Farewell, restartPayload(m))
	s.Stage = chat.StageEnded
	return c.result(s, start), nil
}

func (c *Controller) restart(s *chat.Session, start int) (Result, error) {
	if err := c.guard(s, ActionRestart); err != nil {
		return c.rejectStage(s, start, err)
	}

	if s.Stage == chat.StageQuizResult {
		s.ResetQuiz()
		m := c.messages(s)
		c.offer(s, func(int) string { return m.RestartQuiz })
		return c.result(s, start), nil
	}

	s.ResetAll()
	c.greet(s)
	return c.result(s, 0), nil
}

func (c *Controller) greet(s *chat.Session) {
	m := c.messages(s)
	profiles := c.profiles.List()
	buttons := make([]chat.Button, len(profiles))
	for i, p := range profiles {
		buttons[i] = chat.Button{
			Label:  profileLabel(p, s.Language),
			Action: string(ActionSelectAgeGroup),
			Value:  p.ID,
		}
	}
	c.say(s, m.Greeting, &chat.Payload{Kind: chat.PayloadButtons, Buttons: buttons})
	s.Stage = chat.StageAgeGroupSelect
}

// offer 重新抽样展示的文物并进入 artifact_select。
func (c *Controller) offer(s *chat.Session, intro func(count int) string) {
	m := c.messages(s)
	sample := c.artifacts.Sample(c.offerSize)

	ids := make([]string, len(sample))
	refs := make([]artifact.Ref, len(sample))
	lines := make([]string, len(sample))
	for i, a := range sample {
		ids[i] = a.ID
		refs[i] = a.Ref()
		lines[i] = fmt.Sprintf("%d. %s", i+1, a.DisplayName())
	}
	s.OfferedArtifacts = ids

	text := intro(len(sample)) + "\n\n" + m.TourListTitle + "\n" + strings.Join(lines, "\n") +
		"\n\n" + fmt.Sprintf(m.SelectPrompt, MinSelection, MaxSelection)
	c.say(s, text, &chat.Payload{
		Kind:      chat.PayloadArtifactChoices,
		Artifacts: refs,
		MinSelect: MinSelection,
		MaxSelect: MaxSelection,
	})
	s.Stage = chat.StageArtifactSelect
}

func (c *Controller) askQuestion(s *chat.Session) {
	m := c.messages(s)
	item := s.Quizzes[s.CurrentIndex]

	options := make([]string, len(item.Options))
	for i, option := range item.Options {
		options[i] = optionLabel(i) + " " + option
	}
	c.say(s, fmt.Sprintf(m.Question, s.CurrentIndex+1, s.TotalQuestions(), item.Question, strings.Join(options, "\n")),
		&chat.Payload{Kind: chat.PayloadQuizChoices, Choices: append([]string(nil), item.Options...)})
	s.Stage = chat.StageQuizQuestion
}

func (c *Controller) showResult(s *chat.Session) {
	m := c.messages(s)
	total := s.TotalQuestions()
	percent := 0
	if total > 0 {
		percent = s.CorrectCount * 100 / total
	}
	tier := TierFor(percent)

	c.say(s, fmt.Sprintf(m.Result, total, s.CorrectCount, percent, m.Tiers[tier]), &chat.Payload{
		Kind: chat.PayloadResult,
		Result: &chat.ResultSummary{
			Total:   total,
			Correct: s.CorrectCount,
			Percent: percent,
			Tier:    string(tier),
		},
		Buttons: []chat.Button{
			{Label: m.ReviewButton, Action: string(ActionReviewWrong)},
			{Label: m.RestartButton, Action: string(ActionRestart)},
			{Label: m.EndButton, Action: string(ActionEnd)},
		},
	})
	s.Stage = chat.StageQuizResult
}

// generate 并发出题，结果顺序与选择顺序一致。
func (c *Controller) generate(ctx context.Context, sessionID string, selected []artifact.Artifact, difficulty quiz.Difficulty) []quiz.Item {
	ctx, span := telemetry.Tracer.Start(ctx, "dialogue.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.Int("quiz.count", len(selected)),
	)

	begin := time.Now()
	items := make([]quiz.Item, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, a := range selected {
		g.Go(func() error {
			items[i] = c.gen.Generate(gctx, a, difficulty)
			return nil
		})
	}
	_ = g.Wait()

	c.log.Infow("quiz generated", "session", sessionID, "count", len(items), "difficulty", difficulty, "elapsed", time.Since(begin))
	return items
}

func (c *Controller) guard(s *chat.Session, kind ActionKind) error {
	if isAllowed(s.Stage, kind) {
		return nil
	}
	return fmt.Errorf("%w: %s in stage %s", ErrIllegalTransition, kind, s.Stage)
}

func (c *Controller) rejectStage(s *chat.Session, start int, err error) (Result, error) {
	return c.reject(s, start, err, c.messages(s).Guidance[s.Stage])
}

// reject 追加一条引导消息，不改变阶段与测验进度。
func (c *Controller) reject(s *chat.Session, start int, err error, guidance string) (Result, error) {
	c.log.Debugw("action rejected", "session", s.ID, "stage", s.Stage, "error", err)
	c.say(s, guidance, nil)
	return c.result(s, start), err
}

func (c *Controller) result(s *chat.Session, start int) Result {
	s.UpdatedAt = c.now()
	return Result{
		Turns:   append([]chat.Turn(nil), s.Turns[start:]...),
		Allowed: Allowed(s.Stage),
	}
}

func (c *Controller) say(s *chat.Session, text string, payload *chat.Payload) chat.Turn {
	if payload == nil {
		payload = &chat.Payload{Kind: chat.PayloadText}
	}
	turn := chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleSystem,
		Text:      text,
		Timestamp: c.now(),
		Payload:   payload,
	}
	s.Append(turn)
	return turn
}

func (c *Controller) echo(s *chat.Session, text string) {
	s.Append(chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleUser,
		Text:      text,
		Timestamp: c.now(),
	})
}

func (c *Controller) profile(s *chat.Session) *profile.Profile {
	if s.ProfileID == "" {
		return nil
	}
	p, ok := c.profiles.FindByID(s.ProfileID)
	if !ok {
		return nil
	}
	return &p
}

func (c *Controller) messages(s *chat.Session) *Messages {
	return MessagesFor(s.Language, c.profile(s))
}

func (c *Controller) difficulty(s *chat.Session) quiz.Difficulty {
	if p := c.profile(s); p != nil {
		return p.Difficulty
	}
	return quiz.DifficultyAny
}

func restartPayload(m *Messages) *chat.Payload {
	return &chat.Payload{
		Kind:    chat.PayloadButtons,
		Buttons: []chat.Button{{Label: m.RestartButton, Action: string(ActionRestart)}},
	}
}

func profileLabel(p profile.Profile, language string) string {
	if language == "en" && p.LabelEn != "" {
		return p.LabelEn
	}
	return p.Label
}

var circledNumbers = []string{"①", "②", "③", "④", "⑤"}

func optionLabel(i int) string {
	if i >= 0 && i < len(circledNumbers) {
		return circledNumbers[i]
	}
	return fmt.Sprintf("(%d)", i+1)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
