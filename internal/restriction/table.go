package restriction

// Table translates a user-facing restriction key into the ingredient
// name substrings it forbids. Keys with no entry are matched literally.
type Table map[string][]string

// DefaultTable returns the built-in translation table: the 19 Korean
// standard allergens, aggregate categories, and the vegetarian/vegan
// diets. Loaded once at startup and passed into the expander.
func DefaultTable() Table {
	return Table{
		// Korean standard allergens (19).
		"난류": {"계란", "달걀", "메추리알", "계란말이", "지단", "계란찜", "스크램블", "에그"},
		"우유": {
			"우유", "유제품", "치즈", "버터", "요거트", "요플레", "생크림", "크림",
			"마가린", "연유", "분유", "카제인", "유청", "사워크림", "크림치즈",
		},
		"메밀": {"메밀", "메밀국수", "메밀가루", "메밀묵"},
		"땅콩": {"땅콩", "피넛", "땅콩버터", "땅콩가루"},
		"대두": {
			"대두", "콩", "두부", "된장", "간장", "고추장", "청국장", "콩나물", "순두부",
			"유부", "콩가루", "두유", "춘장", "미소", "템페", "콩기름",
		},
		"밀": {
			"밀", "밀가루", "부침가루", "빵가루", "수제비", "칼국수", "면", "파스타",
			"라면", "국수", "스파게티", "빵", "케이크", "시리얼", "글루텐", "또띠아",
		},
		"잣":  {"잣", "잣가루"},
		"호두": {"호두", "월넛", "호두과자"},
		"게":  {"게", "크랩", "꽃게", "대게", "킹크랩", "게맛살", "맛살"},
		"새우": {"새우", "대하", "새우젓", "크릴", "칵테일새우", "건새우", "깐새우"},
		"오징어": {"오징어", "꼴뚜기", "물오징어", "마른오징어", "오징어채"},
		"고등어": {"고등어", "삼치", "방어"},
		"조개류": {
			"조개", "굴", "전복", "홍합", "가리비", "바지락", "꼬막", "소라", "키조개",
			"백합", "동죽", "재첩", "관자",
		},
		"복숭아": {"복숭아", "황도", "백도", "넥타린"},
		"토마토": {"토마토", "방울토마토", "케첩", "토마토소스", "토마토페이스트", "파스타소스"},
		"닭고기": {
			"닭", "치킨", "닭가슴살", "닭다리", "닭발", "닭날개", "삼계탕", "닭볶음탕",
			"닭갈비", "닭강정", "닭꼬치",
		},
		"돼지고기": {
			"돼지", "돈육", "등뼈", "베이컨", "햄", "소시지", "삼겹살", "목살", "항정살",
			"족발", "수육", "등심", "안심", "갈매기살", "앞다리살", "뒷다리살",
		},
		"쇠고기": {
			"소", "쇠", "한우", "육우", "우삼겹", "갈비", "사골", "소꼬리", "양지",
			"차돌박이", "불고기감", "등심", "안심", "채끝", "설도", "우둔", "육회",
		},
		"아황산류": {"와인", "건포도", "건과일", "표백제", "보존제", "아황산나트륨"},

		// Aggregate categories.
		"견과류": {
			"땅콩", "피넛", "땅콩버터", "잣", "호두", "월넛", "아몬드", "캐슈넛",
			"마카다미아", "피스타치오", "헤이즐넛", "견과",
		},
		"갑각류": {
			"게", "크랩", "꽃게", "맛살", "새우", "대하", "새우젓", "가재", "랍스터",
			"크릴",
		},
		"생선": {
			"생선", "고등어", "갈치", "조기", "참치", "연어", "꽁치", "생태", "명태", "동태",
			"황태", "북어", "코다리", "임연수", "가자미", "삼치", "방어", "전어", "멸치",
		},
		"해산물": {
			"생선", "고등어", "갈치", "조기", "참치", "연어", "꽁치", "생태", "명태", "동태",
			"황태", "북어", "코다리", "멸치",
			"게", "크랩", "꽃게", "맛살", "새우", "대하", "새우젓", "가재", "랍스터",
			"조개", "굴", "전복", "홍합", "가리비", "바지락", "꼬막", "소라",
			"어묵", "해물", "오징어", "문어", "쭈꾸미", "낙지", "꼴뚜기", "멍게", "해삼", "날치알",
		},
		"육류": {
			"돼지", "돈육", "베이컨", "햄", "소시지", "삼겹살", "목살", "족발", "수육",
			"소", "쇠", "한우", "육우", "갈비", "사골", "소꼬리", "차돌박이", "불고기감", "육회",
			"닭", "치킨", "닭가슴살", "닭다리", "삼계탕", "닭볶음탕",
			"오리", "양", "염소", "육류", "고기",
		},

		// Diets. 육수/스톡 entries catch hidden animal stock bases.
		"채식": {
			"돼지", "돈육", "베이컨", "햄", "소시지", "삼겹살", "소", "쇠", "한우", "육우", "갈비", "사골",
			"닭", "치킨", "오리", "양", "육류", "고기",
			"생선", "고등어", "갈치", "조기", "참치", "연어", "꽁치", "생태", "명태", "동태", "황태", "북어",
			"어묵", "맛살", "해물", "해산물", "오징어", "문어", "조개", "굴", "전복", "홍합", "쭈꾸미", "낙지",
			"멸치", "액젓", "까나리", "새우젓", "육수", "스톡", "다시다", "사골육수", "멸치육수",
			"치킨스톡", "비프스톡", "코인육수", "한알육수",
		},
		"비건": {
			"돼지", "돈육", "베이컨", "햄", "소시지", "삼겹살", "소", "쇠", "한우", "육우", "갈비", "사골",
			"닭", "치킨", "오리", "양", "육류", "생선", "고등어", "갈치", "조기", "참치", "연어", "꽁치", "생태",
			"명태", "동태", "황태", "북어", "어묵", "맛살", "해물", "해산물", "오징어", "문어", "조개", "굴",
			"전복", "홍합", "쭈꾸미", "낙지", "멸치", "액젓", "까나리", "새우젓", "육수", "스톡", "다시다",
			"사골육수", "멸치육수", "치킨스톡",
			"계란", "달걀", "메추리알", "난류", "알",
			"우유", "치즈", "버터", "요거트", "생크림", "유제품", "크림",
			"꿀", "젤라틴",
		},
	}
}
