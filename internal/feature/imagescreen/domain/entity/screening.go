// Package entity はimagescreenフィーチャーのドメインモデルを定義します。
package entity

// PhotoScreening は掲載写真のセーフサーチ判定結果を表します。
type PhotoScreening struct {
	Adult    string // 成人向けコンテンツの可能性（VERY_UNLIKELY 〜 VERY_LIKELY）
	Violence string // 暴力的コンテンツの可能性
	Racy     string // 際どいコンテンツの可能性
	Flagged  bool   // いずれかがLIKELY以上の場合true
}

// DescriptionScreening は説明文のポリシーチェック結果を表します。
type DescriptionScreening struct {
	Description string // チェック対象の説明文
	Summary     string // AI生成のポリシー所見
}
