package catalog

import "github.com/hammamikhairi/recipebrowser/internal/domain"

// Builtin returns the recipes shipped with the browser, in display order.
func Builtin() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{
			ID:    1,
			Name:  "蛋炒飯",
			Icon:  "🍳",
			Image: "images/egg-fried-rice.jpg",
			Instructions: "【材料】• 隔夜白飯 2碗 • 雞蛋 2顆 • 蔥花 適量 " +
				"【步驟】1. 雞蛋打散，熱鍋下油炒至半熟後盛起。" +
				"2. 同鍋下白飯拌炒至粒粒分明。" +
				"3. 倒回蛋液與蔥花，以鹽調味即可。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealLunchDinner,
				domain.CategoryTime:       domain.TimeQuick,
				domain.CategoryIngredient: domain.IngredientVegetable,
			},
		},
		{
			ID:    2,
			Name:  "提拉米蘇",
			Icon:  "🍰",
			Image: "images/tiramisu.jpg",
			Instructions: "【材料】• 馬斯卡彭起司 250g • 手指餅乾 • 濃縮咖啡 • 可可粉 " +
				"【步驟】1. 蛋黃加糖打發，拌入馬斯卡彭起司。" +
				"2. 手指餅乾沾咖啡後鋪底。" +
				"3. 一層餅乾一層起司糊，冷藏 6 小時。" +
				"4. 食用前撒上可可粉。",
			Tags: domain.Tags{
				domain.CategoryTaste: domain.TasteSweet,
				domain.CategoryTime:  domain.TimeLong,
			},
		},
		{
			ID:    3,
			Name:  "三杯雞",
			Icon:  "🐔",
			Image: "images/three-cup-chicken.jpg",
			Instructions: "【材料】• 雞腿肉 500g • 麻油 • 米酒 • 醬油 • 九層塔 " +
				"【步驟】1. 麻油爆香薑片與蒜頭。" +
				"2. 下雞腿肉煎至表面金黃。" +
				"3. 加入米酒與醬油，小火燜 15 分鐘。" +
				"4. 起鍋前拌入九層塔。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealLunchDinner,
				domain.CategoryTime:       domain.TimeMedium,
				domain.CategoryIngredient: domain.IngredientChicken,
			},
		},
		{
			ID:    4,
			Name:  "法式吐司",
			Icon:  "🍞",
			Image: "images/french-toast.jpg",
			Instructions: "【材料】• 吐司 2片 • 雞蛋 1顆 • 牛奶 50ml • 蜂蜜 " +
				"【步驟】1. 雞蛋與牛奶拌勻。" +
				"2. 吐司兩面浸泡蛋液。" +
				"3. 奶油熱鍋，煎至兩面金黃後淋上蜂蜜。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSweet,
				domain.CategoryMeal:       domain.MealBreakfast,
				domain.CategoryTime:       domain.TimeQuick,
				domain.CategoryIngredient: domain.IngredientOther,
			},
		},
		{
			ID:    5,
			Name:  "紅燒牛肉麵",
			Icon:  "🍜",
			Image: "images/beef-noodle-soup.jpg",
			Instructions: "【材料】• 牛腱 600g • 豆瓣醬 • 番茄 • 麵條 " +
				"【步驟】1. 牛腱汆燙後切塊。" +
				"2. 炒香豆瓣醬與番茄，加入牛肉與水。" +
				"3. 小火燉煮 2 小時。" +
				"4. 麵條另外煮熟，加湯與牛肉即可。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealLunchDinner,
				domain.CategoryTime:       domain.TimeLong,
				domain.CategoryIngredient: domain.IngredientBeef,
			},
		},
		{
			ID:    6,
			Name:  "清蒸鱸魚",
			Icon:  "🐟",
			Image: "images/steamed-sea-bass.jpg",
			Instructions: "【材料】• 鱸魚 1尾 • 薑絲 • 蔥絲 • 蒸魚醬油 " +
				"【步驟】1. 魚身劃刀，鋪上薑絲。" +
				"2. 大火蒸 10 分鐘。" +
				"3. 倒掉蒸魚水，鋪蔥絲淋熱油與醬油。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealLunchDinner,
				domain.CategoryTime:       domain.TimeQuick,
				domain.CategoryIngredient: domain.IngredientFish,
			},
		},
		{
			ID:    7,
			Name:  "蒜泥白肉",
			Icon:  "🐷",
			Image: "images/garlic-pork.jpg",
			Instructions: "【材料】• 五花肉 300g • 蒜泥 • 醬油膏 • 小黃瓜 " +
				"【步驟】1. 五花肉冷水下鍋煮 30 分鐘。" +
				"2. 放涼後切薄片，鋪在小黃瓜絲上。" +
				"3. 淋上蒜泥醬汁。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealLunchDinner,
				domain.CategoryTime:       domain.TimeMedium,
				domain.CategoryIngredient: domain.IngredientPork,
			},
		},
		{
			ID:    8,
			Name:  "鮮蝦粥",
			Icon:  "🍤",
			Image: "images/shrimp-congee.jpg",
			Instructions: "【材料】• 白米 1杯 • 鮮蝦 10隻 • 薑絲 • 芹菜末 " +
				"【步驟】1. 白米加水熬煮成粥。" +
				"2. 放入薑絲與鮮蝦煮至變色。" +
				"3. 撒芹菜末，以鹽調味。",
			Tags: domain.Tags{
				domain.CategoryTaste:      domain.TasteSavory,
				domain.CategoryMeal:       domain.MealBreakfast,
				domain.CategoryTime:       domain.TimeMedium,
				domain.CategoryIngredient: domain.IngredientSeafood,
			},
		},
	}
}
