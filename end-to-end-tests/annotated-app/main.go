package main

import (
	"fmt"

	"example.com/annotated-app/l10n"
)

// View marks types that render a body.
type View interface {
	Render() string
}

// ProfileView shows a user.
//
// @Equatable
// @Metadata("プロフィール画面")
type ProfileView struct {
	View
	User  string
	Score int
	Cache map[string]int // @SkipEquatable
	body  string
}

// @Metadata("""
//     設定
//     複数行
//     """)
type Settings struct {
	Theme string
}

var (
	// #L10n("home.title", "ホーム")
	title l10n.Resource

	// #L10n("home.subtitle", "ようこそ", bundle: .main)
	subtitle l10n.Resource

	// #LocalizedText("greeting")
	greeting l10n.Text
)

// @Metadata("エントリーポイント")
func main() {
	fmt.Println(title, subtitle, greeting, Settings{}, ProfileView{})
}
