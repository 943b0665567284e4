package dialogue

import (
	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
	"github.com/zhouzirui/museum-guide/backend/internal/model/profile"
)

// Tier 是按正确率划分的鼓励档位。
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierGreat   Tier = "great"
	TierGood    Tier = "good"
	TierFair    Tier = "fair"
	TierRetry   Tier = "retry"
)

// TierFor 按 100 / 80 / 60 / 40 的阈值划分档位。
func TierFor(percent int) Tier {
	switch {
	case percent >= 100:
		return TierPerfect
	case percent >= 80:
		return TierGreat
	case percent >= 60:
		return TierGood
	case percent >= 40:
		return TierFair
	default:
		return TierRetry
	}
}

// Messages 是一种语言与语气下的全部文案，带 %d / %s 的字段由控制器格式化。
type Messages struct {
	Greeting        string
	AskTour         string
	TourYes         string
	TourNo          string
	TourLoaded      string
	TourListTitle   string
	SelectPrompt    string
	NoTour          string
	TooFew          string
	TooMany         string
	UnknownArtifact string
	UnknownProfile  string
	SelectionEcho   string
	Loading         string
	Ready           string
	ReadyButton     string
	Question        string
	Correct         string
	Wrong           string
	NextButton      string
	ResultButton    string
	Result          string
	Tiers           map[Tier]string
	ReviewButton    string
	RestartButton   string
	EndButton       string
	ReviewTitle     string
	ReviewItem      string
	NoWrong         string
	Farewell        string
	RestartQuiz     string
	OutOfRange      string
	Help            string
	Guidance        map[chat.Stage]string
}

// MessagesFor 根据会话语言与访客档案选择文案。未选档案时韩语默认使用亲切的半语。
func MessagesFor(language string, p *profile.Profile) *Messages {
	if language == "en" {
		return &englishMessages
	}
	if p != nil && !p.Casual {
		return &koreanFormal
	}
	return &koreanCasual
}

var koreanCasual = Messages{
	Greeting:        "안녕! 👋 나는 국립중앙박물관 학습 도우미야!\n오늘 전시 재밌게 봤어?\n퀴즈 풀기 전에 먼저 알려줘~",
	AskTour:         "%s이구나! 반가워~ 😊\n혹시 오늘 '나의 전시투어' 만들었어?",
	TourYes:         "응, 만들었어!",
	TourNo:          "아니, 아직...",
	TourLoaded:      "좋아! 전시투어 불러올게~ ⏳\n\n와~ 유물 %d개나 담았네! 👏",
	TourListTitle:   "📜 나의 전시투어",
	SelectPrompt:    "퀴즈로 풀고 싶은 유물을 %d~%d개 골라줘!",
	NoTour:          "앗, 전시투어를 먼저 만들어줘! 🏛️\n전시투어에 유물을 담아야 퀴즈를 풀 수 있어.\n\n다음에 다시 만나자! 👋",
	TooFew:          "지금 %d개 골랐어. 최소 %d개는 골라줘!",
	TooMany:         "%d개는 너무 많아! 최대 %d개까지만 골라줘.",
	UnknownArtifact: "목록에 없는 유물이 있어: %s",
	UnknownProfile:  "위에 버튼 중에서 골라줘! 😊",
	SelectionEcho:   "%d개 선택: %s",
	Loading:         "퀴즈 %d문제를 만들고 있어... ⏳",
	Ready:           "좋아! %d개 유물로 퀴즈 시작할게! 🚀\n준비됐어?",
	ReadyButton:     "준비 완료!",
	Question:        "📝 문제 %d/%d\n\n%s\n\n%s",
	Correct:         "🎉 정답이야! 대단해~\n\n%s",
	Wrong:           "앗, 아쉬워! 😅\n\n정답은 '%s'야!\n%s",
	NextButton:      "다음 문제",
	ResultButton:    "결과 보기",
	Result:          "🎊 퀴즈 끝! 수고했어~\n\n📊 결과\n• 총 문제: %d개\n• 맞은 개수: %d개\n• 정답률: %d%%\n\n%s",
	Tiers: map[Tier]string{
		TierPerfect: "만점이야! 🏆 완벽해!",
		TierGreat:   "와~ 진짜 잘했어! 👏👏",
		TierGood:    "잘했어! 조금만 더 하면 만점이야! 😊",
		TierFair:    "괜찮아! 한 번 더 보면 더 잘할 수 있어! 💪",
		TierRetry:   "다음엔 더 잘할 수 있어! 전시를 한 번 더 둘러볼까? 💪",
	},
	ReviewButton:  "오답 복습",
	RestartButton: "다시 하기",
	EndButton:     "끝내기",
	ReviewTitle:   "📚 틀린 문제 복습!",
	ReviewItem:    "❌ %s\n네 답: %s\n정답: %s",
	NoWrong:       "틀린 문제가 없어! 👏",
	Farewell:      "오늘 퀴즈 재밌었어? 😊\n\n다음에 박물관 오면 또 퀴즈 풀자!\n오늘 본 유물들 잊지 마~ 👋\n\n🏛️ 대화가 종료되었습니다.",
	RestartQuiz:   "좋아, 한 번 더 해 보자! 🔁",
	OutOfRange:    "1~%d 중에서 골라줘!",
	Help:          "🆘 도움말\n\n• '종료' - 대화 끝내기\n• '처음' - 처음부터 다시 (퀴즈가 끝난 뒤)\n• '도움' - 이 도움말 보기\n\n버튼 누르거나 자유롭게 입력해줘!",
	Guidance: map[chat.Stage]string{
		chat.StageGreeting:       "조금만 기다려줘, 곧 시작할게!",
		chat.StageAgeGroupSelect: "위에 버튼 중에서 골라줘! 😊",
		chat.StageTourCheck:      "'응' 아니면 '아니'로 대답해줘!",
		chat.StageArtifactSelect: "유물 체크하고 '선택 완료' 버튼 눌러줘!",
		chat.StageQuizReady:      "'준비 완료' 버튼 눌러줘!",
		chat.StageQuizQuestion:   "1~5 중에서 숫자로 대답해줘!",
		chat.StageQuizFeedback:   "'다음 문제' 버튼 눌러줘!",
		chat.StageQuizResult:     "'오답 복습', '다시 하기', '끝내기' 중에서 골라줘!",
		chat.StageEnded:          "다시 하려면 '다시 하기' 버튼 눌러줘!",
	},
}

var koreanFormal = Messages{
	Greeting:        "안녕하세요! 👋 국립중앙박물관 학습 도우미입니다.\n오늘 전시는 즐거우셨나요?\n퀴즈를 풀기 전에 먼저 알려주세요.",
	AskTour:         "%s이시군요! 반갑습니다. 😊\n혹시 오늘 '나의 전시투어'를 만드셨나요?",
	TourYes:         "네, 만들었어요!",
	TourNo:          "아니요, 아직이요...",
	TourLoaded:      "좋습니다! 전시투어를 불러올게요~ ⏳\n\n와~ 유물 %d개나 담으셨네요! 👏",
	TourListTitle:   "📜 나의 전시투어",
	SelectPrompt:    "퀴즈로 풀고 싶은 유물을 %d~%d개 선택해 주세요.",
	NoTour:          "앗, 전시투어를 먼저 만들어주세요! 🏛️\n전시투어에 유물을 담아야 퀴즈를 풀 수 있어요.\n\n다음에 다시 만나요! 👋",
	TooFew:          "지금 %d개를 선택하셨어요. 최소 %d개 이상 선택해 주세요!",
	TooMany:         "%d개는 너무 많아요. 최대 %d개까지만 선택해 주세요.",
	UnknownArtifact: "목록에 없는 유물이 포함되어 있어요: %s",
	UnknownProfile:  "위 버튼 중에서 선택해주세요! 😊",
	SelectionEcho:   "%d개 선택: %s",
	Loading:         "퀴즈 %d문제를 만들고 있어요... ⏳",
	Ready:           "좋습니다! %d개 유물로 퀴즈를 시작할게요! 🚀\n준비되셨나요?",
	ReadyButton:     "준비 완료!",
	Question:        "📝 문제 %d/%d\n\n%s\n\n%s",
	Correct:         "🎉 정답이에요! 대단해요~\n\n%s",
	Wrong:           "앗, 아쉬워요! 😅\n\n정답은 '%s'이에요!\n%s",
	NextButton:      "다음 문제",
	ResultButton:    "결과 보기",
	Result:          "🎊 퀴즈 끝! 수고하셨어요~\n\n📊 결과\n• 총 문제: %d개\n• 맞은 개수: %d개\n• 정답률: %d%%\n\n%s",
	Tiers: map[Tier]string{
		TierPerfect: "만점입니다! 🏆 완벽해요!",
		TierGreat:   "와~ 정말 잘하셨어요! 👏👏",
		TierGood:    "잘하셨어요! 조금만 더 하면 만점이에요! 😊",
		TierFair:    "괜찮아요! 한 번 더 보시면 더 잘하실 거예요! 💪",
		TierRetry:   "다음엔 더 잘할 수 있을 거예요! 전시를 한 번 더 둘러보시겠어요? 💪",
	},
	ReviewButton:  "오답 복습",
	RestartButton: "다시 하기",
	EndButton:     "끝내기",
	ReviewTitle:   "📚 틀린 문제 복습!",
	ReviewItem:    "❌ %s\n내 답: %s\n정답: %s",
	NoWrong:       "틀린 문제가 없어요! 👏",
	Farewell:      "오늘 퀴즈 재밌으셨나요? 😊\n\n다음에 박물관 오시면 또 퀴즈 풀어요!\n오늘 본 유물들 잊지 마세요~ 👋\n\n🏛️ 대화가 종료되었습니다.",
	RestartQuiz:   "좋습니다, 한 번 더 해 볼까요? 🔁",
	OutOfRange:    "1~%d 중에서 선택해 주세요!",
	Help:          "🆘 도움말\n\n• '종료' - 대화 종료\n• '처음' - 처음부터 다시 (퀴즈가 끝난 뒤)\n• '도움' - 이 도움말 보기\n\n버튼을 클릭하거나 자유롭게 입력해주세요!",
	Guidance: map[chat.Stage]string{
		chat.StageGreeting:       "잠시만 기다려 주세요, 곧 시작합니다!",
		chat.StageAgeGroupSelect: "위 버튼 중에서 선택해주세요! 😊",
		chat.StageTourCheck:      "'응' 또는 '아니'로 대답해주세요!",
		chat.StageArtifactSelect: "유물을 체크박스로 선택한 후 '선택 완료' 버튼을 눌러주세요!",
		chat.StageQuizReady:      "'준비 완료' 버튼을 눌러주세요!",
		chat.StageQuizQuestion:   "1~5 중에서 숫자로 대답해주세요!",
		chat.StageQuizFeedback:   "'다음 문제' 버튼을 눌러주세요!",
		chat.StageQuizResult:     "'오답 복습', '다시 하기', '끝내기' 중에서 선택해주세요!",
		chat.StageEnded:          "다시 하시려면 '다시 하기' 버튼을 눌러주세요!",
	},
}

var englishMessages = Messages{
	Greeting:        "Hi! 👋 I'm your study buddy at the National Museum of Korea.\nDid you enjoy the exhibition today?\nBefore the quiz, tell me who you are!",
	AskTour:         "Nice to meet you, %s! 😊\nDid you build your 'My Exhibition Tour' today?",
	TourYes:         "Yes, I did!",
	TourNo:          "Not yet...",
	TourLoaded:      "Great! Loading your tour... ⏳\n\nWow, you saved %d artifacts! 👏",
	TourListTitle:   "📜 My Exhibition Tour",
	SelectPrompt:    "Pick %d to %d artifacts for your quiz.",
	NoTour:          "Oops, please build your exhibition tour first! 🏛️\nYou need artifacts in your tour to take the quiz.\n\nSee you next time! 👋",
	TooFew:          "You picked %d. Please pick at least %d!",
	TooMany:         "%d is too many! Please pick at most %d.",
	UnknownArtifact: "Some artifacts are not on the list: %s",
	UnknownProfile:  "Please choose one of the buttons above! 😊",
	SelectionEcho:   "Picked %d: %s",
	Loading:         "Preparing %d questions... ⏳",
	Ready:           "Great! Starting a quiz on %d artifacts! 🚀\nReady?",
	ReadyButton:     "Ready!",
	Question:        "📝 Question %d/%d\n\n%s\n\n%s",
	Correct:         "🎉 Correct! Well done!\n\n%s",
	Wrong:           "Oh, so close! 😅\n\nThe answer is '%s'.\n%s",
	NextButton:      "Next question",
	ResultButton:    "See results",
	Result:          "🎊 Quiz complete!\n\n📊 Results\n• Questions: %d\n• Correct: %d\n• Score: %d%%\n\n%s",
	Tiers: map[Tier]string{
		TierPerfect: "Perfect score! 🏆",
		TierGreat:   "Amazing work! 👏👏",
		TierGood:    "Nice job! You're almost there! 😊",
		TierFair:    "Not bad! Another look and you'll ace it! 💪",
		TierRetry:   "You'll do better next time! Want to walk the gallery again? 💪",
	},
	ReviewButton:  "Review mistakes",
	RestartButton: "Play again",
	EndButton:     "Finish",
	ReviewTitle:   "📚 Let's review!",
	ReviewItem:    "❌ %s\nYour answer: %s\nCorrect: %s",
	NoWrong:       "No wrong answers! 👏",
	Farewell:      "Did you enjoy the quiz? 😊\n\nCome back and play again on your next visit!\n\n🏛️ The conversation has ended.",
	RestartQuiz:   "Let's go again! 🔁",
	OutOfRange:    "Please choose between 1 and %d!",
	Help:          "🆘 Help\n\n• 'exit' - end the conversation\n• 'restart' - start over (after the quiz)\n• 'help' - show this message\n\nUse the buttons or type freely!",
	Guidance: map[chat.Stage]string{
		chat.StageGreeting:       "Just a moment, we're about to start!",
		chat.StageAgeGroupSelect: "Please choose one of the buttons above! 😊",
		chat.StageTourCheck:      "Please answer 'yes' or 'no'!",
		chat.StageArtifactSelect: "Tick the artifacts and press 'Done'!",
		chat.StageQuizReady:      "Press 'Ready!' to begin!",
		chat.StageQuizQuestion:   "Answer with a number from 1 to 5!",
		chat.StageQuizFeedback:   "Press 'Next question'!",
		chat.StageQuizResult:     "Choose review, play again, or finish!",
		chat.StageEnded:          "Press 'Play again' to start over!",
	},
}
