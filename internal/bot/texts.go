package bot

// 對用戶顯示的文案集中放在這裡，改字不用翻邏輯

const welcomeTextFmt = `🎉 <b>歡迎使用北金管家 North™Sea ᴍ8ᴘ</b>

👋 你好 %s！

🤖 我是專業的多幣別財務管理機器人，提供以下功能：

💰 <b>記帳功能:</b>
• 支援台幣(TWD)和人民幣(CNY)
• 快速記錄收入和支出
• 支援日期指定和代記帳

📊 <b>報表功能:</b>
• 個人月度報表
• 群組統計報表
• 歷史數據查詢

💱 <b>匯率管理:</b>
• 自訂匯率設定
• 歷史匯率查詢

💵 <b>資金管理:</b>
• 公桶/私人資金分類
• 餘額查詢統計

⚙️ <b>快速開始:</b>
點擊下方按鈕或輸入 /help 查看完整指令
`

const helpText = `📖 <b>北金管家機器人指令說明</b>

🔸 <b>基本指令</b>
/start - 啟動機器人，顯示主選單
/restart - 重新啟動機器人（僅管理員）
/help - 顯示此幫助信息

🔸 <b>報表指令</b>
<code>📊個人報表</code> - 顯示個人當月收支報表
<code>📊組別報表</code> - 顯示此群組的收支總計
<code>📊車隊總表</code> - 顯示全群組的收支總計
<code>📚歷史報表</code> - 查看過去月份的報表
<code>初始化報表</code> - 清空所有個人報表數據

🔸 <b>記帳指令 (多種格式輸入方式)</b>
<code>TW+數字</code> - 記錄台幣收入
<code>TW-數字</code> - 記錄台幣支出
<code>CN+數字</code> - 記錄人民幣收入
<code>CN-數字</code> - 記錄人民幣支出
<code>台幣+數字</code> - 記錄台幣收入
<code>人民幣-數字</code> - 記錄人民幣支出

🔸 <b>日期記帳</b>
<code>日期 TW+數字</code> - 記錄特定日期台幣收入
<code>日期 TW-數字</code> - 記錄特定日期台幣支出
<code>日期 CN+數字</code> - 記錄特定日期人民幣收入
<code>日期 CN-數字</code> - 記錄特定日期人民幣支出

🔸 <b>為其他用戶記帳</b>
<code>@用戶名 日期 TW+數字</code> - 為指定用戶記錄台幣收入
<code>@用戶名 日期 TW-數字</code> - 為指定用戶記錄台幣支出

🔸 <b>資金管理</b>
<code>公桶+數字</code> - 增加公桶資金
<code>公桶-數字</code> - 減少公桶資金
<code>私人+數字</code> - 增加私人資金
<code>私人-數字</code> - 減少私人資金

🔸 <b>匯率設置</b>
<code>設置匯率 數字</code> - 設置今日匯率
<code>設置"日期"匯率 數字</code> - 設置指定日期匯率

🔸 <b>刪除記錄</b>
<code>刪除"日期"TW金額</code> - 刪除指定日期台幣記錄
<code>刪除"日期"CN金額</code> - 刪除指定日期人民幣記錄
<code>刪除"月份"TW報表</code> - 刪除整個月份的台幣記錄
<code>刪除"月份"CN報表</code> - 刪除整個月份的人民幣記錄

🔸 <b>其他設置</b>
<code>使用者設定 名稱</code> - 設置報表標題名稱
<code>歡迎詞設定 內容</code> - 設置新成員加入群組時的歡迎訊息
<code>列表</code> - 回覆訊息文本並輸入列表可格式化當前的文本內容

💡 <b>提示:</b>
• 所有指令都支援群組和私聊使用
• 日期格式支援: MM/DD, YYYY-MM-DD
• 金額支援小數點，但建議使用整數
`

const mainMenuText = `🏠 <b>北金管家主選單</b>

歡迎使用多幣別財務管理系統！

請選擇您需要的功能：

📊 <b>報表功能</b> - 查看個人或群組財務報表
📚 <b>歷史查詢</b> - 查詢過往月份數據
💱 <b>匯率管理</b> - 設置和查看匯率
⚙️ <b>系統設置</b> - 個人化設定選項
`

const payoutMenuText = `📊 <b>出款報表</b>

請選擇要查看的報表類型：

📅 <b>當日報表</b> - 查看今日出款記錄
📊 <b>當月報表</b> - 查看本月出款統計
`

const moneyActionsText = "💰 <b>金額異動選單</b>\n\n請選擇操作類型："

const reportDisplayText = "📊 <b>報表顯示選單</b>\n\n請選擇要查看的報表類型："

const settingsMenuText = `⚙️ <b>設置選單</b>

請選擇要設置的項目：

👤 <b>使用者設定</b> - 設置顯示名稱
💱 <b>匯率設定</b> - 管理匯率設定
👋 <b>歡迎詞設定</b> - 設定群組歡迎訊息
🗑️ <b>清空報表</b> - 清除歷史數據
`

const commandHelpText = `🔣 <b>指令說明選單</b>

請選擇您的身份以查看相應的指令說明：`

const clearReportsMenuText = `🚯 <b>清空報表選單</b>

⚠️ <b>注意：此操作不可逆！</b>

請選擇要清空的報表類型：

• 🚯清空個人報表 - 清空您的個人交易記錄
• 🚯清空組別報表 - 清空當前群組記錄（需管理員權限）
• 🚯清空車隊總表 - 清空所有群組記錄（需群主權限）`

const rateHelpText = `❌ 匯率設定格式不正確

支援的格式：
• <code>設定匯率33.00</code> - 今日台幣匯率
• <code>設定6/1匯率33.00</code> - 指定日期台幣匯率
• <code>設定CN匯率7.5</code> - 今日人民幣匯率
• <code>設定6/1CN匯率7.0</code> - 指定日期人民幣匯率`

const deleteHelpText = `❓ <b>刪除記錄指令格式</b>

🔸 <b>刪除特定記錄</b>
<code>刪除"日期"TW金額</code> - 刪除指定日期台幣記錄
<code>刪除"日期"CN金額</code> - 刪除指定日期人民幣記錄

🔸 <b>刪除月份記錄</b>
<code>刪除"月份"TW報表</code> - 刪除整個月份的台幣記錄
<code>刪除"月份"CN報表</code> - 刪除整個月份的人民幣記錄

💡 <b>範例:</b>
• <code>刪除"6/1"TW500</code> - 刪除6月1日台幣500元記錄
• <code>刪除"6月"CN報表</code> - 刪除6月所有人民幣記錄
`

const listUsageText = `❌ 請回覆包含客戶資訊的訊息並輸入「列表」

📝 支援的格式:
• 客戶/姓名: 張三
• 金額: 1000萬 或 500克
• 時間: 9/1 或 14:30
• 地址: 台北市信義區
• 公司: ABC公司`

const clearDatePromptFmt = `🚯 <b>清空%s</b>

請直接輸入要清空的月份或日期：

💡 格式範例:
• <code>6</code> - 清空6月報表
• <code>6/12</code> - 清空6/12報表

⚠️ 此操作將刪除該月份或當日的所有記錄，無法復原！`

const clearBadDateText = `❌ 日期格式錯誤

請輸入正確格式：
• 月份：<code>6</code>
• 日期：<code>6/12</code>`

const clearConfirmFmt = `⚠️ <b>確認清空 %s</b>

您確定要清空 <code>%s</code> 的%s嗎？

⚠️ <b>此操作不可復原！</b>

請輸入 <code>確認</code> 來執行刪除，或輸入其他任何內容取消操作。`

const clearDoneFmt = "✅ <b>清空完成</b>\n\n已成功清空 <code>%s</code> 的%s"

const clearCancelledText = "🔙 已取消清空操作"

const twHelpText = `💰 <b>台幣記帳</b>

請輸入交易格式：

<b>台幣收入</b>
<code>Tw+NN</code> <code>+NN</code>

<b>台幣支出</b>
<code>Tw-NN</code> <code>-NN</code>

<b>指定日期</b>
<code>MM/DD +NN</code> <code>MM/DD -NN</code>`

const cnHelpText = `💰 <b>人民幣記帳</b>

請輸入交易格式：

<b>人民幣收入</b>
<code>Cn+NN</code> <code>+NN</code>

<b>人民幣支出</b>
<code>Cn-NN</code> <code>-NN</code>

<b>指定日期</b>
<code>MM/DD +NN</code> <code>MM/DD -NN</code>`

const publicFundHelpFmt = `💵 <b>公桶資金管理</b>

<b>餘額:</b> <code>NT$%s</code>

<b>操作格式：</b>
<code>公桶+NN</code> <code>公桶-NN</code>`

const privateFundHelpFmt = `💵 <b>私人資金管理</b>

<b>餘額:</b> <code>NT$%s</code>

<b>操作格式：</b>
<code>私人+NN</code> <code>私人-NN</code>`

const ownerHelpText = `1️⃣ <b>群主指令</b>

🔸 <b>完整權限</b>
• 所有管理員和操作員功能
• 🚯清空車隊總表 - 清空所有群組數據
• 👤使用者設定 - 管理所有用戶權限

🔸 <b>系統管理</b>
• 設定匯率、歡迎詞等系統參數
• 管理群組設定和權限分配`

const adminHelpText = `2️⃣ <b>管理員指令</b>

🔸 <b>報表管理</b>
• 📊組別報表 - 查看和管理群組報表
• 🚯清空組別報表 - 清空當前群組數據

🔸 <b>用戶管理</b>
• 👤使用者設定 - 管理操作員權限
• 💱匯率設定 - 設定交易匯率`

const operatorHelpText = `3️⃣ <b>操作員指令</b>

🔸 <b>報表指令</b>
• 📊個人報表 - 顯示個人當月收支報表
• 🚯清空個人報表 - 清空所有個人報表數據

🔸 <b>記帳指令</b>
• 💰金額異動 - 按鍵內的功能都可以使用

🔸 <b>列表指令</b>
• 列表 - 回覆訊息文本並輸入列表可格式化當前的文本內容`
