package artifact

// Seed provides the national-treasure catalog exhibited at the National Museum of Korea.
func Seed() []Artifact {
	return []Artifact{
		{
			ID:          "NMK-001",
			Name:        "금동미륵보살반가사유상",
			NameEn:      "Gilt-bronze Pensive Bodhisattva (No. 78)",
			Period:      "삼국시대 (6세기)",
			Material:    "금동 (청동에 금도금)",
			Designation: "국보 제78호",
			Gallery:     "사유의 방 (2층)",
			Location:    "국립중앙박물관",
			Description: "높이 83.2cm의 반가사유상으로, 부드러운 미소와 섬세한 표현이 특징입니다. 삼국시대 불교 조각의 최고 걸작으로 국보 83호와 함께 '사유의 방'에 전시되어 있습니다.",
			FunFacts: []string{
				"2021년 개관한 '사유의 방'에 국보 제83호와 나란히 전시되어 있다.",
				"머리에 해와 달을 조합한 화려한 보관을 쓰고 있다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/7/73/Pensive_Bodhisattva_01.jpg/440px-Pensive_Bodhisattva_01.jpg",
			Quiz: &Quiz{
				Question:    "국보 제78호 반가사유상이 현재 전시된 곳은?",
				Options:     []string{"불교조각실", "사유의 방", "선사고대관", "서화관"},
				Answer:      1,
				Explanation: "국보 제78호와 83호 반가사유상은 2021년 개관한 '사유의 방'에 나란히 전시되어 있습니다.",
			},
		},
		{
			ID:          "NMK-002",
			Name:        "금동미륵보살반가사유상",
			NameEn:      "Gilt-bronze Pensive Bodhisattva (No. 83)",
			Period:      "삼국시대 (7세기)",
			Material:    "금동 (청동에 금도금)",
			Designation: "국보 제83호",
			Gallery:     "사유의 방 (2층)",
			Location:    "국립중앙박물관",
			Description: "높이 93.5cm의 대형 반가사유상입니다. 한쪽 다리를 다른 쪽 무릎 위에 올리고, 손가락을 뺨에 댄 채 깊은 생각에 잠긴 모습이 특징입니다.",
			FunFacts: []string{
				"'반가사유'는 한쪽 다리를 올리고 깊은 생각에 잠긴 자세를 뜻한다.",
				"단순한 삼산관을 쓰고 있어 제78호보다 소박한 인상을 준다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/5a/Korea-National_Treasure_83-Geumdong_Mireukbosal_Bangasayusang-01.jpg/440px-Korea-National_Treasure_83-Geumdong_Mireukbosal_Bangasayusang-01.jpg",
			Quiz: &Quiz{
				Question:    "'반가사유'는 어떤 자세를 의미할까요?",
				Options:     []string{"두 손을 모아 기도하는 자세", "한쪽 다리를 올리고 생각하는 자세", "누워서 명상하는 자세", "서서 설법하는 자세"},
				Answer:      1,
				Explanation: "반가사유는 한쪽 다리를 다른 쪽 무릎 위에 올리고 손가락을 뺨에 댄 채 깊은 생각에 잠긴 자세를 말합니다.",
			},
		},
		{
			ID:          "NMK-003",
			Name:        "경천사 십층석탑",
			NameEn:      "Ten-story Stone Pagoda from Gyeongcheonsa Temple Site",
			Period:      "고려 (1348년)",
			Material:    "대리석",
			Designation: "국보 제86호",
			Gallery:     "역사의 길 (1층 로비)",
			Location:    "국립중앙박물관",
			Description: "높이 약 13.5m의 대리석 석탑입니다. 원나라 양식의 영향을 받았으며, 전체에 불·보살·나한 등이 섬세하게 조각되어 있습니다. 일제강점기 일본 반출 후 반환되었습니다.",
			FunFacts: []string{
				"일제강점기에 일본으로 반출되었다가 다시 돌아왔다.",
				"박물관 실내에 전시된 석탑 가운데 가장 높다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8e/Ten-story_Stone_Pagoda_of_Gyeongcheonsa_Temple_Site.jpg/440px-Ten-story_Stone_Pagoda_of_Gyeongcheonsa_Temple_Site.jpg",
			Quiz: &Quiz{
				Question:    "경천사 십층석탑의 재료는 무엇일까요?",
				Options:     []string{"화강암", "대리석", "사암", "현무암"},
				Answer:      1,
				Explanation: "경천사 십층석탑은 대리석으로 만들어진 석탑으로, 고려 후기 원나라의 영향을 받은 양식입니다.",
			},
		},
		{
			ID:          "NMK-004",
			Name:        "금관총 금관",
			NameEn:      "Gold Crown from Geumgwanchong Tomb",
			Period:      "신라 (5-6세기)",
			Material:    "금, 옥",
			Designation: "국보 제87호",
			Gallery:     "선사고대관 신라실 (1층)",
			Location:    "국립중앙박물관",
			Description: "1921년 경주 금관총에서 발견된 신라 금관입니다. 나뭇가지 모양(出자형)과 사슴뿔 모양의 세움 장식이 특징이며, 신라 왕족의 권위를 상징합니다.",
			FunFacts: []string{
				"세움 장식은 나뭇가지와 사슴뿔 모양을 하고 있다.",
				"1921년 집터 공사 중에 우연히 발견되었다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/0f/Gold_Crown_from_Geumgwanchong.jpg/440px-Gold_Crown_from_Geumgwanchong.jpg",
			Quiz: &Quiz{
				Question:    "신라 금관의 세움 장식은 어떤 모양을 하고 있을까요?",
				Options:     []string{"꽃과 나비 모양", "나뭇가지와 사슴뿔 모양", "구름과 달 모양", "파도와 물고기 모양"},
				Answer:      1,
				Explanation: "신라 금관은 나뭇가지 모양(出자형)과 사슴뿔 모양의 세움 장식이 특징이며, 이는 하늘과 땅을 연결하는 의미를 담고 있습니다.",
			},
		},
		{
			ID:          "NMK-005",
			Name:        "도기 기마인물형 뿔잔",
			NameEn:      "Horse-rider Shaped Vessel",
			Period:      "신라 (5-6세기)",
			Material:    "토기",
			Designation: "국보 제91호",
			Gallery:     "선사고대관 신라실 (1층)",
			Location:    "국립중앙박물관",
			Description: "경주 금령총에서 출토된 말을 탄 인물 형상의 토기입니다. 주인상과 하인상 두 점이 한 쌍을 이루며, 신라의 뛰어난 토기 제작 기술을 보여줍니다.",
			FunFacts: []string{
				"경주 금령총에서 주인상과 하인상 두 점이 함께 출토되었다.",
				"말 엉덩이 쪽 잔으로 액체를 넣으면 가슴 쪽 대롱으로 따를 수 있다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4b/Silla_-_Warrior_on_Horseback_-_01.jpg/440px-Silla_-_Warrior_on_Horseback_-_01.jpg",
			Quiz: &Quiz{
				Question:    "기마인물형 토기가 출토된 무덤의 이름은?",
				Options:     []string{"천마총", "금관총", "금령총", "황남대총"},
				Answer:      2,
				Explanation: "국보 제91호 기마인물형 토기는 경주 금령총에서 주인상과 하인상 두 점이 함께 출토되었습니다.",
			},
		},
		{
			ID:          "NMK-006",
			Name:        "청동 은입사 포류수금문 정병",
			NameEn:      "Bronze Kundika with Silver-inlaid Willow and Waterfowl Design",
			Period:      "고려 (12세기)",
			Material:    "청동, 은",
			Designation: "국보 제92호",
			Gallery:     "조각공예관 금속공예실 (3층)",
			Location:    "국립중앙박물관",
			Description: "높이 37.5cm의 정병으로, 은입사 기법으로 버드나무와 물새 무늬를 새겼습니다. 고려시대 금속공예의 정수를 보여주는 걸작입니다.",
			FunFacts: []string{
				"은입사는 홈을 파고 은실을 끼워 넣어 무늬를 만드는 기법이다.",
				"정병은 깨끗한 물을 담아 부처님께 바치던 그릇이다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e5/Bronze_Kundika_with_Silver_Inlaid_Willow_and_Waterfowl_Design.jpg/440px-Bronze_Kundika_with_Silver_Inlaid_Willow_and_Waterfowl_Design.jpg",
			Quiz: &Quiz{
				Question:    "'은입사' 기법은 어떤 기술일까요?",
				Options:     []string{"은을 녹여 붓는 기술", "은실로 그림을 새기는 기술", "은가루를 뿌리는 기술", "은박을 붙이는 기술"},
				Answer:      1,
				Explanation: "은입사는 금속 기물에 홈을 파고 은실을 끼워 넣어 문양을 만드는 고려시대의 정교한 금속공예 기법입니다.",
			},
		},
		{
			ID:          "NMK-007",
			Name:        "백자 달항아리",
			NameEn:      "White Porcelain Moon Jar",
			Period:      "조선 (18세기)",
			Material:    "백자",
			Designation: "국보 제309호",
			Gallery:     "조각공예관 도자공예실 (3층)",
			Location:    "국립중앙박물관",
			Description: "높이 약 40cm의 둥근 백자 항아리입니다. 보름달처럼 풍만한 형태가 특징이며, 조선 백자의 순수한 아름다움을 대표합니다.",
			FunFacts: []string{
				"보름달처럼 둥글고 풍만한 모양 때문에 '달항아리'라고 부른다.",
				"위아래 두 개의 사발을 따로 빚어 이어 붙여 만들었다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/0c/White_Porcelain_Moon_Jar.jpg/440px-White_Porcelain_Moon_Jar.jpg",
			Quiz: &Quiz{
				Question:    "백자 달항아리의 이름이 '달항아리'인 이유는?",
				Options:     []string{"달 그림이 그려져 있어서", "달빛 아래에서 만들어서", "보름달처럼 둥글어서", "달에게 바치는 제기여서"},
				Answer:      2,
				Explanation: "달항아리는 보름달처럼 둥글고 풍만한 형태 때문에 붙여진 이름으로, 조선 백자의 미학을 대표합니다.",
			},
		},
		{
			ID:          "NMK-008",
			Name:        "금동연가7년명여래입상",
			NameEn:      "Gilt-bronze Standing Buddha with Inscription of the 7th Year of Yeonga",
			Period:      "고구려 (539년)",
			Material:    "금동",
			Designation: "국보 제119호",
			Gallery:     "선사고대관 고구려실 (1층)",
			Location:    "국립중앙박물관",
			Description: "고구려 불상 중 유일하게 제작 연도가 새겨진 불상입니다. '연가 7년(539년)'이라는 명문이 있어 고구려 불교 미술 연구에 매우 중요합니다.",
			FunFacts: []string{
				"제작 연도가 새겨진 유일한 고구려 불상이다.",
				"고구려에서 만들어졌지만 경남 의령에서 발견되었다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9a/Gilt-bronze_Standing_Buddha_with_Inscription_of_Year_Yeonga_7.jpg/440px-Gilt-bronze_Standing_Buddha_with_Inscription_of_Year_Yeonga_7.jpg",
			Quiz: &Quiz{
				Question:    "이 불상이 특별한 이유는?",
				Options:     []string{"가장 큰 불상이어서", "제작 연도가 새겨진 유일한 고구려 불상이어서", "금으로만 만들어져서", "여왕이 만들었기 때문에"},
				Answer:      1,
				Explanation: "이 불상은 '연가 7년(539년)'이라는 명문이 새겨진 고구려 유일의 불상으로, 고구려 불교 미술 연구에 매우 중요합니다.",
			},
		},
		{
			ID:          "NMK-009",
			Name:        "다뉴세문경",
			NameEn:      "Bronze Mirror with Fine Linear Design",
			Period:      "청동기시대 (기원전 4-3세기)",
			Material:    "청동",
			Designation: "국보 제141호",
			Gallery:     "선사고대관 청동기실 (1층)",
			Location:    "국립중앙박물관",
			Description: "여러 개의 꼭지(多鈕)가 달린 청동 거울로, 머리카락보다 가는 1만 3천여 개의 선으로 동심원 무늬를 새겼습니다. 청동기시대 금속공예의 최고 걸작입니다.",
			FunFacts: []string{
				"지름 21cm 안에 1만 3천여 개의 가는 선이 새겨져 있다.",
				"'세문(細文)'은 가느다란 선 무늬라는 뜻이다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/a/ab/Multi-knobbed_Fine-patterned_Mirror.jpg/440px-Multi-knobbed_Fine-patterned_Mirror.jpg",
			Quiz: &Quiz{
				Question:    "다뉴세문경의 '세문'은 무엇을 의미할까요?",
				Options:     []string{"세 가지 문양", "가느다란 선 무늬", "세상의 무늬", "새의 무늬"},
				Answer:      1,
				Explanation: "'세문(細文)'은 가느다란 선 무늬를 뜻합니다. 다뉴세문경에는 머리카락보다 가는 1만 3천여 개의 선이 새겨져 있습니다.",
			},
		},
		{
			ID:          "NMK-010",
			Name:        "인왕제색도",
			NameEn:      "Clearing After Rain on Mount Inwang",
			Period:      "조선 (1751년)",
			Material:    "종이에 수묵",
			Designation: "국보 제216호",
			Gallery:     "서화관 (2층)",
			Location:    "국립중앙박물관",
			Description: "겸재 정선이 76세에 그린 진경산수화의 걸작입니다. 비 갠 후 인왕산의 모습을 담았으며, 이건희 컬렉션으로 2021년 국립중앙박물관에 기증되었습니다.",
			FunFacts: []string{
				"'인왕제색'은 '인왕산에 비가 개다'라는 뜻이다.",
				"겸재 정선이 76세의 나이에 그렸다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3e/Inwangjesaekdo.jpg/440px-Inwangjesaekdo.jpg",
			Quiz: &Quiz{
				Question:    "'인왕제색'의 뜻은 무엇일까요?",
				Options:     []string{"인왕산의 가을 풍경", "인왕산 비가 개다", "인왕산의 봄날", "인왕산의 달빛"},
				Answer:      1,
				Explanation: "'인왕제색(仁王霽色)'은 '인왕산 비가 개다'라는 뜻으로, 비 온 뒤 맑아진 인왕산의 모습을 그린 작품입니다.",
			},
		},
		{
			ID:          "NMK-011",
			Name:        "금동관음보살입상",
			NameEn:      "Gilt-bronze Standing Avalokitesvara Bodhisattva",
			Period:      "백제 (7세기)",
			Material:    "금동",
			Designation: "국보 제128호",
			Gallery:     "조각공예관 불교조각실 (3층)",
			Location:    "국립중앙박물관",
			Description: "높이 15.2cm의 백제 보살상입니다. 삼면보관을 쓰고 있으며, 부드럽고 유연한 자태가 백제 불상의 특징을 잘 보여줍니다. 이건희 컬렉션으로 기증되었습니다.",
			FunFacts: []string{
				"높이가 15.2cm로 손바닥만 한 크기이다.",
				"몸을 살짝 비튼 부드러운 자세가 백제 불상의 특징을 보여준다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fc/Gilt-bronze_Standing_Avalokitesvara_Bodhisattva.jpg/440px-Gilt-bronze_Standing_Avalokitesvara_Bodhisattva.jpg",
			Quiz: &Quiz{
				Question:    "이 불상이 보여주는 백제 불상의 특징은?",
				Options:     []string{"강인하고 힘찬 모습", "부드럽고 유연한 자태", "화려한 장식", "거대한 크기"},
				Answer:      1,
				Explanation: "백제 불상은 부드럽고 유연한 자태가 특징이며, 이 관음보살입상은 그 특징을 잘 보여주는 대표작입니다.",
			},
		},
		{
			ID:          "NMK-012",
			Name:        "백자 청화매죽문 항아리",
			NameEn:      "Blue and White Porcelain Jar with Plum and Bamboo Design",
			Period:      "조선 (15세기)",
			Material:    "백자",
			Designation: "국보 제219호",
			Gallery:     "조각공예관 도자공예실 (3층)",
			Location:    "국립중앙박물관",
			Description: "청화안료로 매화와 대나무를 그린 조선 초기 백자입니다. 세련된 문양과 조형미가 뛰어나 조선 청화백자의 대표작으로 평가됩니다. 이건희 컬렉션으로 기증되었습니다.",
			FunFacts: []string{
				"'청화'는 코발트 안료로 그린 푸른 그림을 말한다.",
				"당시 코발트 안료는 수입품이라 매우 귀했다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/4/47/Blue_and_White_Porcelain_Jar_with_Plum_and_Bamboo_Design.jpg/440px-Blue_and_White_Porcelain_Jar_with_Plum_and_Bamboo_Design.jpg",
			Quiz: &Quiz{
				Question:    "'청화백자'의 '청화'는 무엇을 의미할까요?",
				Options:     []string{"푸른 꽃무늬", "코발트 안료로 그린 푸른 그림", "맑은 하늘색 유약", "청자와 백자의 결합"},
				Answer:      1,
				Explanation: "'청화'는 코발트 안료로 그린 푸른색 그림을 말합니다. 청화백자는 백자에 푸른 안료로 그림을 그린 도자기입니다.",
			},
		},
		{
			ID:          "NMK-013",
			Name:        "진흥왕 북한산 순수비",
			NameEn:      "Monument on Bukhansan Mountain Commemorating King Jinheung's Inspection",
			Period:      "신라 (555년 추정)",
			Material:    "화강암",
			Designation: "국보 제3호",
			Gallery:     "선사고대관 신라실 (1층)",
			Location:    "국립중앙박물관",
			Description: "신라 진흥왕이 북한산 지역을 순행한 기념으로 세운 비석입니다. 원래 북한산 비봉에 있었으나 야외 훼손을 막기 위해 박물관으로 옮겨졌습니다.",
			FunFacts: []string{
				"왕이 새로 넓힌 영토를 직접 돌아본 것을 기념해 세웠다.",
				"추사 김정희가 비문을 판독해 진흥왕의 비석임을 밝혀냈다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/51/Bukhansan_Silla_Jinheung_Sunsubi.jpg/440px-Bukhansan_Silla_Jinheung_Sunsubi.jpg",
			Quiz: &Quiz{
				Question:    "진흥왕 순수비가 세워진 이유는?",
				Options:     []string{"왕의 업적을 기리기 위해", "새로 개척한 영토를 순행한 기념으로", "불교를 전파하기 위해", "전쟁 승리를 기념하기 위해"},
				Answer:      1,
				Explanation: "순수비는 왕이 새로 개척한 영토를 직접 돌아보며(순수) 세운 기념비입니다. 진흥왕의 영토 확장을 보여주는 중요한 사료입니다.",
			},
		},
		{
			ID:          "NMK-014",
			Name:        "수월관음도",
			NameEn:      "Water-Moon Avalokitesvara",
			Period:      "고려 (14세기)",
			Material:    "비단에 채색",
			Designation: "국보",
			Gallery:     "서화관 불교회화실 (2층)",
			Location:    "국립중앙박물관",
			Description: "물가 바위에 앉아 있는 관음보살을 그린 고려 불화입니다. 섬세한 필치와 화려한 색채가 특징이며, 고려 불교 회화의 최고 걸작으로 평가됩니다.",
			FunFacts: []string{
				"물가 달빛 아래 바위에 앉은 관음보살을 그렸다.",
				"비단 뒷면에서도 색을 칠하는 배채법으로 은은한 색을 냈다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d5/Korea-Goryeo-Avalokitesvara-Water_Moon-Kagami_jinja-01.jpg/440px-Korea-Goryeo-Avalokitesvara-Water_Moon-Kagami_jinja-01.jpg",
			Quiz: &Quiz{
				Question:    "'수월관음'은 어떤 모습의 관음보살일까요?",
				Options:     []string{"달빛 아래 서 있는 모습", "물가 바위에 앉아 있는 모습", "연꽃 위에 앉은 모습", "구름을 타고 있는 모습"},
				Answer:      1,
				Explanation: "'수월관음'은 물가(水) 달빛(月) 아래 바위에 앉아 중생을 구제하는 관음보살의 모습을 말합니다.",
			},
		},
		{
			ID:          "NMK-015",
			Name:        "청자 상감모란문 표형병",
			NameEn:      "Celadon Gourd-shaped Bottle with Inlaid Peony Design",
			Period:      "고려 (12세기)",
			Material:    "청자",
			Designation: "국보 제116호",
			Gallery:     "조각공예관 도자공예실 (3층)",
			Location:    "국립중앙박물관",
			Description: "표주박 모양의 고려청자로, 상감 기법으로 모란 무늬를 새겼습니다. 비취색 유약과 세련된 형태가 고려청자의 아름다움을 대표합니다.",
			FunFacts: []string{
				"상감은 표면을 파낸 뒤 다른 색 흙을 채워 무늬를 내는 기법이다.",
				"표주박을 닮은 몸체 덕분에 '표형병'이라고 부른다.",
			},
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6a/Celadon_Gourd-shaped_Bottle_with_Inlaid_Peony_Design.jpg/440px-Celadon_Gourd-shaped_Bottle_with_Inlaid_Peony_Design.jpg",
			Quiz: &Quiz{
				Question:    "고려청자의 '상감 기법'은 어떤 방식일까요?",
				Options:     []string{"표면에 그림을 그리는 방식", "표면을 파낸 후 다른 색 흙을 채워 넣는 방식", "금박을 입히는 방식", "유약을 두껍게 바르는 방식"},
				Answer:      1,
				Explanation: "상감 기법은 표면을 파낸 후 백토나 자토를 채워 넣어 무늬를 만드는 고려 고유의 기술입니다.",
			},
		},
	}
}
